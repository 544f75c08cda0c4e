package ledger

import "github.com/google/uuid"

// Scope is the handle to one tenant's data partition. Every ledger operation
// takes it explicitly; nothing in this package reads ambient auth state.
type Scope struct {
	TenantID uuid.UUID
	UserID   uuid.UUID
}

// ResolveScope maps verified authentication claims to a tenant scope.
// Missing or malformed ids yield ErrUnauthorized.
func ResolveScope(userID, tenantID string) (Scope, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return Scope{}, ErrUnauthorized
	}
	tid, err := uuid.Parse(tenantID)
	if err != nil {
		return Scope{}, ErrUnauthorized
	}
	return Scope{TenantID: tid, UserID: uid}, nil
}

func (s Scope) valid() bool {
	return s.TenantID != uuid.Nil
}
