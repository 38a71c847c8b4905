// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"lokabumi/config"
	"lokabumi/internal/domain/entity"
	"lokabumi/internal/domain/service"
)

// sessionTokenTTL bounds how long a persisted session survives without a
// fresh login. Mobile sessions are long-lived by convention.
const sessionTokenTTL = time.Hour * 24 * 30

// ErrSessionTokenInvalid is returned when a persisted session token fails
// verification for any reason (signature, expiry, malformed claims).
var ErrSessionTokenInvalid = errors.New("session token invalid")

// jwtSessionTokenService implements SessionTokenService using HS256 JWTs.
type jwtSessionTokenService struct {
	secret string
	ttl    time.Duration
}

// NewSessionTokenService is the constructor for jwtSessionTokenService.
func NewSessionTokenService(cfg *config.Config) (service.SessionTokenService, error) {
	if cfg == nil || cfg.Auth == nil || cfg.Auth.SessionSecret == "" {
		return nil, errors.New("session token secret must be provided")
	}

	return &jwtSessionTokenService{
		secret: cfg.Auth.SessionSecret,
		ttl:    sessionTokenTTL,
	}, nil
}

// Issue creates a signed token asserting the identity of the active session.
func (s *jwtSessionTokenService) Issue(userID uuid.UUID, userType entity.UserType) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(s.ttl).Unix(),
		"role": userType.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// Verify parses and validates a session token and extracts its claims.
func (s *jwtSessionTokenService) Verify(tokenString string) (*service.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrSessionTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrSessionTokenInvalid
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, ErrSessionTokenInvalid
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, ErrSessionTokenInvalid
	}

	role, _ := claims["role"].(string)
	userType := entity.UserType(role)
	if !userType.IsValid() {
		return nil, ErrSessionTokenInvalid
	}

	return &service.SessionClaims{
		UserID:   userID,
		UserType: userType,
	}, nil
}
