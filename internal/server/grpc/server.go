// Package grpc exposes the server services over gRPC using the Portal
// service generated in internal/proto.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/hoopaconnect/internal/logging"
	pb "github.com/dmitrijs2005/hoopaconnect/internal/proto"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/auth"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/models"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/services"
	"google.golang.org/grpc"
)

// UserService is the identity surface used by the transport.
type UserService interface {
	SignUp(ctx context.Context, email, password, phone string) (*services.TokenPair, error)
	SignIn(ctx context.Context, email, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	SignOut(ctx context.Context, refreshToken string) error
	GetSession(ctx context.Context, userID string) (*auth.Identity, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type RoleService interface {
	GetRole(ctx context.Context, userID string) (string, error)
}

type ProfileService interface {
	Get(ctx context.Context, userID string) (*models.Profile, error)
	Update(ctx context.Context, userID string, p *models.Profile) (*models.Profile, error)
}

type MessageService interface {
	Latest(ctx context.Context) (*models.ChairmanMessage, error)
	Post(ctx context.Context, callerID, text string) (*models.ChairmanMessage, error)
	Delete(ctx context.Context, callerID, id string) error
}

type VaultService interface {
	Get(ctx context.Context, userID string) (*models.VaultEntry, error)
	Upsert(ctx context.Context, userID, storageKey, url string) (*models.VaultEntry, error)
}

type MarketplaceService interface {
	List(ctx context.Context, ownerID string) ([]*models.MarketplaceItem, error)
	Create(ctx context.Context, caller auth.Identity, item *models.MarketplaceItem) (*models.MarketplaceItem, error)
	Update(ctx context.Context, callerID string, item *models.MarketplaceItem) (*models.MarketplaceItem, error)
	Delete(ctx context.Context, callerID, id string) error
}

type MediaService interface {
	PresignUpload(ctx context.Context, callerID, bucket, key, contentType string, upsert bool) (string, error)
	ResolveURL(ctx context.Context, callerID, bucket, key string) (string, time.Time, error)
}

// Services bundles everything the transport dispatches to.
type Services struct {
	Users       UserService
	Roles       RoleService
	Profiles    ProfileService
	Messages    MessageService
	Vault       VaultService
	Marketplace MarketplaceService
	Media       MediaService
}

type GRPCServer struct {
	pb.UnimplementedPortalServer
	address      string
	svc          Services
	logger       logging.Logger
	jwtSecret    []byte
	metrics      *Metrics
	resetLimiter *PeerLimiter
}

func NewGRPCServer(a string, l logging.Logger, svc Services, secretKey string, m *Metrics, resetLimiter *PeerLimiter) *GRPCServer {
	return &GRPCServer{
		address:      a,
		logger:       l.With("module", "grpc_server"),
		svc:          svc,
		jwtSecret:    []byte(secretKey),
		metrics:      m,
		resetLimiter: resetLimiter,
	}
}

// NewServer builds a grpc.Server with the interceptor chain and the Portal
// service registered.
func (s *GRPCServer) NewServer() *grpc.Server {
	interceptors := []grpc.UnaryServerInterceptor{}
	if s.metrics != nil {
		interceptors = append(interceptors, s.metrics.UnaryInterceptor)
	}
	interceptors = append(interceptors, s.accessTokenInterceptor)
	if s.resetLimiter != nil {
		interceptors = append(interceptors, s.resetLimiter.UnaryInterceptor(pb.Portal_RequestPasswordReset_FullMethodName))
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors...))
	pb.RegisterPortalServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
