// Package request guards a single user action against double submission.
package request

import (
	"context"
	"sync/atomic"

	"github.com/dmitrijs2005/hoopaconnect/internal/common"
)

// State of a guarded action.
type State int32

const (
	Idle State = iota
	InFlight
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case InFlight:
		return "in-flight"
	case Done:
		return "done"
	}
	return "unknown"
}

// Guard lets at most one call of an action run at a time. The transition to
// InFlight is a single compare-and-swap, so a second submit made before the
// first one finishes is rejected with common.ErrBusy.
type Guard struct {
	state atomic.Int32
}

func (g *Guard) State() State {
	return State(g.state.Load())
}

// Run executes fn unless another Run is in flight.
func (g *Guard) Run(ctx context.Context, fn func(context.Context) error) error {
	if !g.state.CompareAndSwap(int32(Idle), int32(InFlight)) &&
		!g.state.CompareAndSwap(int32(Done), int32(InFlight)) {
		return common.ErrBusy
	}
	defer g.state.Store(int32(Done))
	return fn(ctx)
}
