package auth

import (
	"testing"

	"tradein/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService()

	token, err := svc.GenerateToken(&entity.Actor{
		ID:      "user-1",
		Email:   "owner@example.com",
		IsAdmin: true,
	}, "secret-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	actor, err := svc.ValidateToken(token, "secret-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", actor.ID)
	assert.Equal(t, "owner@example.com", actor.Email)
	assert.True(t, actor.IsAdmin)
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	svc := NewJWTService()

	token, err := svc.GenerateToken(&entity.Actor{ID: "user-1"}, "secret-1")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token, "secret-2")
	assert.Error(t, err)
}

func TestJWTService_GarbageTokenRejected(t *testing.T) {
	svc := NewJWTService()

	_, err := svc.ValidateToken("not-a-token", "secret-1")
	assert.Error(t, err)
}

func TestJWTService_NonAdminByDefault(t *testing.T) {
	svc := NewJWTService()

	token, err := svc.GenerateToken(&entity.Actor{ID: "user-1", Email: "owner@example.com"}, "secret-1")
	require.NoError(t, err)

	actor, err := svc.ValidateToken(token, "secret-1")
	require.NoError(t, err)
	assert.False(t, actor.IsAdmin)
}
