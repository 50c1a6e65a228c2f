package roles

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/hoopaconnect/internal/client/models"
	"github.com/dmitrijs2005/hoopaconnect/internal/common"
	"github.com/dmitrijs2005/hoopaconnect/internal/logging"
	"github.com/stretchr/testify/assert"
)

type fakeLookup struct {
	role  string
	err   error
	calls int
}

func (f *fakeLookup) GetRole(ctx context.Context, userID string) (string, error) {
	f.calls++
	return f.role, f.err
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		role      string
		err       error
		want      models.Role
		wantWarns int
		wantInfos int
	}{
		{name: "chairman", role: "chairman", want: models.RoleChairman},
		{name: "enrollment", role: "enrollment", want: models.RoleEnrollment},
		{name: "user", role: "user", want: models.RoleUser},
		{name: "no row", err: fmt.Errorf("get role: %w", common.ErrorNotFound), want: models.RoleUser, wantInfos: 1},
		{name: "remote failure", err: errors.New("unavailable"), want: models.RoleUser, wantWarns: 1},
		{name: "garbage value", role: "admin", want: models.RoleUser, wantWarns: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := logging.NewRecorder()
			lk := &fakeLookup{role: tt.role, err: tt.err}
			r := NewResolver(lk, rec)

			got := r.Resolve(context.Background(), "u1")

			assert.Equal(t, tt.want, got)
			assert.Equal(t, 1, lk.calls)
			assert.Equal(t, tt.wantWarns, rec.Count("WARN"))
			assert.Equal(t, tt.wantInfos, rec.Count("INFO"))
		})
	}
}

func TestDestination(t *testing.T) {
	assert.Equal(t, models.ScreenChairmanDashboard, Destination(models.RoleChairman))
	assert.Equal(t, models.ScreenEnrollmentDashboard, Destination(models.RoleEnrollment))
	assert.Equal(t, models.ScreenHome, Destination(models.RoleUser))
}
