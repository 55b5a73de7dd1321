package service

import (
	"tradein/internal/domain/entity"
)

// TokenService validates session tokens issued by the external session layer
// and extracts the actor identity they carry.
type TokenService interface {
	// ValidateToken parses and verifies a session token, returning the actor
	// it identifies.
	ValidateToken(tokenString, secretKey string) (*entity.Actor, error)

	// GenerateToken mints a session token for an actor. Used by tooling and
	// tests; production tokens come from the session layer.
	GenerateToken(actor *entity.Actor, secretKey string) (string, error)
}
