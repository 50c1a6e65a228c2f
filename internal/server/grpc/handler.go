package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/hoopaconnect/internal/proto"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

func (s *GRPCServer) Ping(ctx context.Context, req *emptypb.Empty) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) SignUp(ctx context.Context, req *pb.SignUpRequest) (*pb.TokenResponse, error) {
	s.logger.Info(ctx, "Sign-up request")

	tokens, err := s.svc.Users.SignUp(ctx, req.Email, req.Password, req.Phone)
	if err != nil {
		return nil, s.toStatus(ctx, pb.Portal_SignUp_FullMethodName, err)
	}
	return tokenResponse(tokens), nil
}

func (s *GRPCServer) SignIn(ctx context.Context, req *pb.SignInRequest) (*pb.TokenResponse, error) {
	tokens, err := s.svc.Users.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, pb.Portal_SignIn_FullMethodName, err)
	}
	return tokenResponse(tokens), nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.TokenResponse, error) {
	tokens, err := s.svc.Users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, pb.Portal_RefreshToken_FullMethodName, err)
	}
	return tokenResponse(tokens), nil
}

func (s *GRPCServer) SignOut(ctx context.Context, req *pb.SignOutRequest) (*emptypb.Empty, error) {
	if err := s.svc.Users.SignOut(ctx, req.RefreshToken); err != nil {
		return nil, s.toStatus(ctx, pb.Portal_SignOut_FullMethodName, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) GetSession(ctx context.Context, req *emptypb.Empty) (*pb.SessionResponse, error) {
	caller, err := identityFrom(ctx)
	if err != nil {
		return nil, err
	}
	id, err := s.svc.Users.GetSession(ctx, caller.UserID)
	if err != nil {
		return nil, s.toStatus(ctx, pb.Portal_GetSession_FullMethodName, err)
	}
	return &pb.SessionResponse{UserId: id.UserID, Email: id.Email}, nil
}

func (s *GRPCServer) RequestPasswordReset(ctx context.Context, req *pb.PasswordResetRequest) (*emptypb.Empty, error) {
	if err := s.svc.Users.RequestPasswordReset(ctx, req.Email); err != nil {
		return nil, s.toStatus(ctx, pb.Portal_RequestPasswordReset_FullMethodName, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) ResetPassword(ctx context.Context, req *pb.ResetPasswordRequest) (*emptypb.Empty, error) {
	if err := s.svc.Users.ResetPassword(ctx, req.Token, req.NewPassword); err != nil {
		return nil, s.toStatus(ctx, pb.Portal_ResetPassword_FullMethodName, err)
	}
	return &emptypb.Empty{}, nil
}

// GetRole returns the caller's own role. NotFound means no role row.
func (s *GRPCServer) GetRole(ctx context.Context, req *pb.GetRoleRequest) (*pb.RoleResponse, error) {
	caller, err := identityFrom(ctx)
	if err != nil {
		return nil, err
	}
	if req.UserId != "" && req.UserId != caller.UserID {
		return nil, status.Error(codes.PermissionDenied, "permission denied")
	}
	role, err := s.svc.Roles.GetRole(ctx, caller.UserID)
	if err != nil {
		return nil, s.toStatus(ctx, pb.Portal_GetRole_FullMethodName, err)
	}
	return &pb.RoleResponse{Role: role}, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, req *emptypb.Empty) (*pb.Profile, error) {
	caller, err := identityFrom(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.svc.Profiles.Get(ctx, caller.UserID)
	if err != nil {
		return nil, s.toStatus(ctx, pb.Portal_GetProfile_FullMethodName, err)
	}
	return profileToPB(p), nil
}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *pb.Profile) (*pb.Profile, error) {
	caller, err := identityFrom(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.svc.Profiles.Update(ctx, caller.UserID, &models.Profile{
		FullName:   req.FullName,
		Phone:      req.Phone,
		ProfilePic: req.ProfilePic,
	})
	if err != nil {
		return nil, s.toStatus(ctx, pb.Portal_UpdateProfile_FullMethodName, err)
	}
	return profileToPB(p), nil
}

func (s *GRPCServer) LatestMessage(ctx context.Context, req *emptypb.Empty) (*pb.Message, error) {
	m, err := s.svc.Messages.Latest(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, pb.Portal_LatestMessage_FullMethodName, err)
	}
	return messageToPB(m), nil
}

func (s *GRPCServer) PostMessage(ctx context.Context, req *pb.PostMessageRequest) (*pb.Message, error) {
	caller, err := identityFrom(ctx)
	if err != nil {
		return nil, err
	}
	m, err := s.svc.Messages.Post(ctx, caller.UserID, req.Message)
	if err != nil {
		return nil, s.toStatus(ctx, pb.Portal_PostMessage_FullMethodName, err)
	}
	return messageToPB(m), nil
}

func (s *GRPCServer) DeleteMessage(ctx context.Context, req *pb.DeleteRequest) (*emptypb.Empty, error) {
	caller, err := identityFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.svc.Messages.Delete(ctx, caller.UserID, req.Id); err != nil {
		return nil, s.toStatus(ctx, pb.Portal_DeleteMessage_FullMethodName, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) GetVaultEntry(ctx context.Context, req *emptypb.Empty) (*pb.VaultEntry, error) {
	caller, err := identityFrom(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.svc.Vault.Get(ctx, caller.UserID)
	if err != nil {
		return nil, s.toStatus(ctx, pb.Portal_GetVaultEntry_FullMethodName, err)
	}
	return vaultToPB(v), nil
}

func (s *GRPCServer) UpsertVaultEntry(ctx context.Context, req *pb.VaultEntry) (*pb.VaultEntry, error) {
	caller, err := identityFrom(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.svc.Vault.Upsert(ctx, caller.UserID, req.StorageKey, req.IdImageUrl)
	if err != nil {
		return nil, s.toStatus(ctx, pb.Portal_UpsertVaultEntry_FullMethodName, err)
	}
	return vaultToPB(v), nil
}

func (s *GRPCServer) ListItems(ctx context.Context, req *pb.ListItemsRequest) (*pb.ListItemsResponse, error) {
	items, err := s.svc.Marketplace.List(ctx, req.OwnerId)
	if err != nil {
		return nil, s.toStatus(ctx, pb.Portal_ListItems_FullMethodName, err)
	}
	resp := &pb.ListItemsResponse{Items: make([]*pb.Item, 0, len(items))}
	for _, i := range items {
		resp.Items = append(resp.Items, itemToPB(i))
	}
	return resp, nil
}

func (s *GRPCServer) CreateItem(ctx context.Context, req *pb.Item) (*pb.Item, error) {
	caller, err := identityFrom(ctx)
	if err != nil {
		return nil, err
	}
	item, err := s.svc.Marketplace.Create(ctx, caller, itemFromPB(req))
	if err != nil {
		return nil, s.toStatus(ctx, pb.Portal_CreateItem_FullMethodName, err)
	}
	return itemToPB(item), nil
}

func (s *GRPCServer) UpdateItem(ctx context.Context, req *pb.Item) (*pb.Item, error) {
	caller, err := identityFrom(ctx)
	if err != nil {
		return nil, err
	}
	item, err := s.svc.Marketplace.Update(ctx, caller.UserID, itemFromPB(req))
	if err != nil {
		return nil, s.toStatus(ctx, pb.Portal_UpdateItem_FullMethodName, err)
	}
	return itemToPB(item), nil
}

func (s *GRPCServer) DeleteItem(ctx context.Context, req *pb.DeleteRequest) (*emptypb.Empty, error) {
	caller, err := identityFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.svc.Marketplace.Delete(ctx, caller.UserID, req.Id); err != nil {
		return nil, s.toStatus(ctx, pb.Portal_DeleteItem_FullMethodName, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) PresignUpload(ctx context.Context, req *pb.PresignUploadRequest) (*pb.PresignUploadResponse, error) {
	caller, err := identityFrom(ctx)
	if err != nil {
		return nil, err
	}
	url, err := s.svc.Media.PresignUpload(ctx, caller.UserID, req.Bucket, req.Key, req.ContentType, req.Upsert)
	if err != nil {
		return nil, s.toStatus(ctx, pb.Portal_PresignUpload_FullMethodName, err)
	}
	return &pb.PresignUploadResponse{Url: url}, nil
}

func (s *GRPCServer) ResolveURL(ctx context.Context, req *pb.ResolveURLRequest) (*pb.ResolveURLResponse, error) {
	caller, err := identityFrom(ctx)
	if err != nil {
		return nil, err
	}
	url, expires, err := s.svc.Media.ResolveURL(ctx, caller.UserID, req.Bucket, req.Key)
	if err != nil {
		return nil, s.toStatus(ctx, pb.Portal_ResolveURL_FullMethodName, err)
	}
	return &pb.ResolveURLResponse{Url: url, ExpiresAt: timestampOrNil(expires)}, nil
}
