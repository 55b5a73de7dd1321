// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"tradein/internal/domain/entity"
	"tradein/internal/domain/service"
	"tradein/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const sessionTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct{}

// NewJWTService is the constructor for jwtService.
func NewJWTService() service.TokenService {
	return &jwtService{}
}

// ValidateToken checks a session token against the secret and extracts the
// actor identity carried in its claims.
func (s *jwtService) ValidateToken(tokenString, secretKey string) (*entity.Actor, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected token claims type")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, errors.New("session token has no subject")
	}

	actor := &entity.Actor{ID: sub}
	if email, ok := claims["email"].(string); ok {
		actor.Email = email
	}
	if admin, ok := claims["admin"].(bool); ok {
		actor.IsAdmin = admin
	}

	return actor, nil
}

// GenerateToken mints a session token for an actor.
func (s *jwtService) GenerateToken(actor *entity.Actor, secretKey string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   actor.ID,
		"email": actor.Email,
		"admin": actor.IsAdmin,
		"iat":   now.Unix(),
		"exp":   now.Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secretKey))
}
