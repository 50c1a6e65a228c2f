package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/hoopaconnect/internal/common"
	"github.com/dmitrijs2005/hoopaconnect/internal/logging"
	pb "github.com/dmitrijs2005/hoopaconnect/internal/proto"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/models"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
)

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:0", logging.Nop{}, newFakes().services(), "secret", nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", logging.Nop{}, newFakes().services(), "secret", nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Run(ctx); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}

func startBufServer(t *testing.T, s *GRPCServer) pb.PortalClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := s.NewServer()
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return pb.NewPortalClient(conn)
}

func TestServer_RoundTrip(t *testing.T) {
	f := newFakes()
	f.users.tokens = &services.TokenPair{AccessToken: "a", RefreshToken: "r"}
	f.profiles.profile = &models.Profile{ID: "u1", Email: "a@b.c", FullName: "Ann"}
	s := NewGRPCServer("", logging.Nop{}, f.services(), testSecret, NewMetrics(), NewPeerLimiter(1))
	client := startBufServer(t, s)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ping, err := client.Ping(ctx, &emptypb.Empty{})
	if err != nil {
		t.Fatalf("Ping error: %v", err)
	}
	if ping.Status != "OK" {
		t.Fatalf("unexpected ping: %+v", ping)
	}

	if _, err := client.GetProfile(ctx, &emptypb.Empty{}); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated without token, got %v", status.Code(err))
	}

	authed := metadata.AppendToOutgoingContext(ctx, common.AccessTokenHeaderName, tokenString(t))
	p, err := client.GetProfile(authed, &emptypb.Empty{})
	if err != nil {
		t.Fatalf("GetProfile error: %v", err)
	}
	if p.FullName != "Ann" || f.profiles.lastUserID != "u1" {
		t.Fatalf("unexpected profile %+v for %q", p, f.profiles.lastUserID)
	}

	if _, err := client.RequestPasswordReset(ctx, &pb.PasswordResetRequest{Email: "a@b.c"}); err != nil {
		t.Fatalf("first reset request: %v", err)
	}
	if _, err := client.RequestPasswordReset(ctx, &pb.PasswordResetRequest{Email: "a@b.c"}); status.Code(err) != codes.ResourceExhausted {
		t.Fatalf("want ResourceExhausted on second reset, got %v", status.Code(err))
	}
}

func tokenString(t *testing.T) string {
	t.Helper()
	md, _ := metadata.FromIncomingContext(tokenCtx(t, time.Minute))
	return md.Get(common.AccessTokenHeaderName)[0]
}
