package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveScope(t *testing.T) {
	userID := uuid.New()
	tenantID := uuid.New()

	scope, err := ResolveScope(userID.String(), tenantID.String())

	require.NoError(t, err)
	assert.Equal(t, userID, scope.UserID)
	assert.Equal(t, tenantID, scope.TenantID)
	assert.True(t, scope.valid())
}

func TestResolveScopeUnauthorized(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		tenantID string
	}{
		{"both empty", "", ""},
		{"missing tenant", uuid.NewString(), ""},
		{"missing user", "", uuid.NewString()},
		{"malformed tenant", uuid.NewString(), "not-a-uuid"},
		{"malformed user", "not-a-uuid", uuid.NewString()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveScope(tt.userID, tt.tenantID)
			assert.ErrorIs(t, err, ErrUnauthorized)
		})
	}
}

func TestScopesAreIndependent(t *testing.T) {
	// Two tenants resolved in the same process get distinct partitions.
	a, err := ResolveScope(uuid.NewString(), uuid.NewString())
	require.NoError(t, err)
	b, err := ResolveScope(uuid.NewString(), uuid.NewString())
	require.NoError(t, err)

	assert.NotEqual(t, a.TenantID, b.TenantID)
}

func TestZeroScopeIsInvalid(t *testing.T) {
	assert.False(t, Scope{}.valid())
}
