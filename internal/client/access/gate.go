// Package access decides whether a user may write a resource.
package access

import "github.com/dmitrijs2005/hoopaconnect/internal/client/models"

// Kind enumerates the writable collections.
type Kind int

const (
	KindChairmanMessage Kind = iota
	KindMarketplaceItem
	KindProfile
	KindVaultEntry
)

// Resource is the thing a write would touch. Owner is ignored for
// role-gated kinds.
type Resource struct {
	Kind  Kind
	Owner string
}

// CanWrite reports whether subject holding role may create, change or delete
// resource. Chairman messages are gated by role, every other kind by
// ownership only.
func CanWrite(role models.Role, subject string, r Resource) bool {
	switch r.Kind {
	case KindChairmanMessage:
		return role == models.RoleChairman
	case KindMarketplaceItem, KindProfile, KindVaultEntry:
		return subject != "" && r.Owner == subject
	default:
		return false
	}
}
