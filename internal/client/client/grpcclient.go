package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/hoopaconnect/internal/client/models"
	"github.com/dmitrijs2005/hoopaconnect/internal/common"
	pb "github.com/dmitrijs2005/hoopaconnect/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.PortalClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	onTokens     func(access, refresh string)
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	access, refresh := s.Tokens()
	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil || method == pb.Portal_RefreshToken_FullMethodName {
		return err
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refresh == "" {
		return err
	}

	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if err != nil {
		return err
	}
	s.SetTokens(resp.AccessToken, resp.RefreshToken)

	// tokens refreshed, one retry with the new access token
	return invoker(withAccessToken(ctx, resp.AccessToken), method, req, reply, cc, opts...)
}

func NewHoopaClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewPortalClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// OnTokens registers fn to be called whenever the token pair changes,
// including after an automatic refresh.
func (s *GRPCClient) OnTokens(fn func(access, refresh string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onTokens = fn
}

func (s *GRPCClient) SetTokens(access, refresh string) {
	s.mu.Lock()
	s.accessToken, s.refreshToken = access, refresh
	fn := s.onTokens
	s.mu.Unlock()

	if fn != nil {
		fn(access, refresh)
	}
}

func (s *GRPCClient) Tokens() (access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.Unauthenticated:
		return common.ErrorUnauthorized
	case codes.PermissionDenied:
		return common.ErrorForbidden
	case codes.AlreadyExists:
		return common.ErrorAlreadyExists
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrValidation, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &emptypb.Empty{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) SignUp(ctx context.Context, email, password, phone string) error {
	resp, err := s.client.SignUp(ctx, &pb.SignUpRequest{Email: email, Password: password, Phone: phone})
	if err != nil {
		return s.mapError(err)
	}
	s.SetTokens(resp.AccessToken, resp.RefreshToken)
	return nil
}

func (s *GRPCClient) SignIn(ctx context.Context, email, password string) error {
	resp, err := s.client.SignIn(ctx, &pb.SignInRequest{Email: email, Password: password})
	if err != nil {
		return s.mapError(err)
	}
	s.SetTokens(resp.AccessToken, resp.RefreshToken)
	return nil
}

// SignOut revokes the refresh token on the server and forgets both tokens
// locally, even when the server call fails.
func (s *GRPCClient) SignOut(ctx context.Context) error {
	_, refresh := s.Tokens()
	s.SetTokens("", "")
	if refresh == "" {
		return nil
	}
	if _, err := s.client.SignOut(ctx, &pb.SignOutRequest{RefreshToken: refresh}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) RequestPasswordReset(ctx context.Context, email string) error {
	_, err := s.client.RequestPasswordReset(ctx, &pb.PasswordResetRequest{Email: email})
	return s.mapError(err)
}

func (s *GRPCClient) ResetPassword(ctx context.Context, token, newPassword string) error {
	_, err := s.client.ResetPassword(ctx, &pb.ResetPasswordRequest{Token: token, NewPassword: newPassword})
	return s.mapError(err)
}

func (s *GRPCClient) GetSession(ctx context.Context) (models.Identity, error) {
	resp, err := s.client.GetSession(ctx, &emptypb.Empty{})
	if err != nil {
		return models.Identity{}, s.mapError(err)
	}
	return models.Identity{UserID: resp.GetUserId(), Email: resp.GetEmail()}, nil
}

func (s *GRPCClient) GetRole(ctx context.Context, userID string) (string, error) {
	resp, err := s.client.GetRole(ctx, &pb.GetRoleRequest{UserId: userID})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Role, nil
}

func (s *GRPCClient) GetProfile(ctx context.Context) (*models.Profile, error) {
	resp, err := s.client.GetProfile(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return profileFromPB(resp), nil
}

func (s *GRPCClient) UpdateProfile(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	resp, err := s.client.UpdateProfile(ctx, &pb.Profile{FullName: p.FullName, Phone: p.Phone, ProfilePic: p.ProfilePic})
	if err != nil {
		return nil, s.mapError(err)
	}
	return profileFromPB(resp), nil
}

func (s *GRPCClient) LatestMessage(ctx context.Context) (*models.ChairmanMessage, error) {
	resp, err := s.client.LatestMessage(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return messageFromPB(resp), nil
}

func (s *GRPCClient) PostMessage(ctx context.Context, text string) (*models.ChairmanMessage, error) {
	resp, err := s.client.PostMessage(ctx, &pb.PostMessageRequest{Message: text})
	if err != nil {
		return nil, s.mapError(err)
	}
	return messageFromPB(resp), nil
}

func (s *GRPCClient) DeleteMessage(ctx context.Context, id string) error {
	_, err := s.client.DeleteMessage(ctx, &pb.DeleteRequest{Id: id})
	return s.mapError(err)
}

func (s *GRPCClient) GetVaultEntry(ctx context.Context) (*models.VaultEntry, error) {
	resp, err := s.client.GetVaultEntry(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return vaultFromPB(resp), nil
}

func (s *GRPCClient) UpsertVaultEntry(ctx context.Context, storageKey, url string) (*models.VaultEntry, error) {
	resp, err := s.client.UpsertVaultEntry(ctx, &pb.VaultEntry{StorageKey: storageKey, IdImageUrl: url})
	if err != nil {
		return nil, s.mapError(err)
	}
	return vaultFromPB(resp), nil
}

func (s *GRPCClient) ListItems(ctx context.Context, owner string) ([]*models.MarketplaceItem, error) {
	resp, err := s.client.ListItems(ctx, &pb.ListItemsRequest{OwnerId: owner})
	if err != nil {
		return nil, s.mapError(err)
	}
	items := make([]*models.MarketplaceItem, 0, len(resp.Items))
	for _, i := range resp.Items {
		items = append(items, itemFromPB(i))
	}
	return items, nil
}

func (s *GRPCClient) CreateItem(ctx context.Context, item *models.MarketplaceItem) (*models.MarketplaceItem, error) {
	resp, err := s.client.CreateItem(ctx, itemToPB(item))
	if err != nil {
		return nil, s.mapError(err)
	}
	return itemFromPB(resp), nil
}

func (s *GRPCClient) UpdateItem(ctx context.Context, id string, item *models.MarketplaceItem) (*models.MarketplaceItem, error) {
	in := itemToPB(item)
	in.Id = id
	resp, err := s.client.UpdateItem(ctx, in)
	if err != nil {
		return nil, s.mapError(err)
	}
	return itemFromPB(resp), nil
}

func (s *GRPCClient) DeleteItem(ctx context.Context, id string) error {
	_, err := s.client.DeleteItem(ctx, &pb.DeleteRequest{Id: id})
	return s.mapError(err)
}

func (s *GRPCClient) PresignUpload(ctx context.Context, bucket, key, contentType string, upsert bool) (string, error) {
	resp, err := s.client.PresignUpload(ctx, &pb.PresignUploadRequest{Bucket: bucket, Key: key, ContentType: contentType, Upsert: upsert})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetUrl(), nil
}

func (s *GRPCClient) ResolveURL(ctx context.Context, bucket, key string) (string, time.Time, error) {
	resp, err := s.client.ResolveURL(ctx, &pb.ResolveURLRequest{Bucket: bucket, Key: key})
	if err != nil {
		return "", time.Time{}, s.mapError(err)
	}
	return resp.GetUrl(), timeOrZero(resp.GetExpiresAt()), nil
}
