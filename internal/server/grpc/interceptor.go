package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/hoopaconnect/internal/common"
	pb "github.com/dmitrijs2005/hoopaconnect/internal/proto"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const identityKey ctxKey = "identity"

// publicMethods may be called without an access token.
var publicMethods = map[string]bool{
	pb.Portal_Ping_FullMethodName:                 true,
	pb.Portal_SignUp_FullMethodName:               true,
	pb.Portal_SignIn_FullMethodName:               true,
	pb.Portal_RefreshToken_FullMethodName:         true,
	pb.Portal_SignOut_FullMethodName:              true,
	pb.Portal_RequestPasswordReset_FullMethodName: true,
	pb.Portal_ResetPassword_FullMethodName:        true,
}

// accessTokenInterceptor validates the access_token metadata on every
// protected method and stores the caller identity in the context.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	id, err := auth.ParseToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}

	return handler(withIdentity(ctx, id), req)
}

func withIdentity(ctx context.Context, id auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// identityFrom returns the caller put in ctx by accessTokenInterceptor.
func identityFrom(ctx context.Context) (auth.Identity, error) {
	id, ok := ctx.Value(identityKey).(auth.Identity)
	if !ok || id.UserID == "" {
		return auth.Identity{}, status.Error(codes.Unauthenticated, "missing identity")
	}
	return id, nil
}
