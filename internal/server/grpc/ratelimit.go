package grpc

import (
	"context"
	"net"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// limiterNow is swapped in tests.
var limiterNow = time.Now

type peerBudget struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// PeerLimiter throttles selected methods per remote host.
type PeerLimiter struct {
	mu        sync.Mutex
	peers     map[string]*peerBudget
	rate      rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time
}

// NewPeerLimiter allows perMinute calls per host, with bursts up to the same amount.
func NewPeerLimiter(perMinute int) *PeerLimiter {
	if perMinute < 1 {
		perMinute = 1
	}
	return &PeerLimiter{
		peers: make(map[string]*peerBudget),
		rate:  rate.Limit(float64(perMinute) / 60),
		burst: perMinute,
		// a budget idle this long has fully refilled
		idle:      time.Minute,
		lastSweep: limiterNow(),
	}
}

// Allow reports whether key may make another call now.
func (l *PeerLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := limiterNow()
	l.sweep(now)

	b, exists := l.peers[key]
	if !exists {
		b = &peerBudget{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.peers[key] = b
	}
	b.lastSeen = now
	return b.limiter.AllowN(now, 1)
}

// sweep drops budgets not touched for l.idle. Callers hold l.mu.
func (l *PeerLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.idle {
		return
	}
	for k, b := range l.peers {
		if now.Sub(b.lastSeen) >= l.idle {
			delete(l.peers, k)
		}
	}
	l.lastSweep = now
}

// peerKey identifies a caller by host so reconnecting from a new port
// shares the same budget.
func peerKey(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return "unknown"
	}
	host, _, err := net.SplitHostPort(p.Addr.String())
	if err != nil {
		return p.Addr.String()
	}
	return host
}

// UnaryInterceptor rejects calls to fullMethod with ResourceExhausted once
// the caller's budget is spent. Other methods pass through.
func (l *PeerLimiter) UnaryInterceptor(fullMethod string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if info.FullMethod != fullMethod {
			return handler(ctx, req)
		}
		if !l.Allow(peerKey(ctx)) {
			return nil, status.Error(codes.ResourceExhausted, "too many requests")
		}
		return handler(ctx, req)
	}
}
