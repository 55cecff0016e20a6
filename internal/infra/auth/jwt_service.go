// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"studio/config"
	"studio/internal/domain/service"
	"studio/internal/errors"
)

// jwtSessionVerifier validates HS256 session tokens issued by the hosted auth provider.
type jwtSessionVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTSessionVerifier is the constructor for jwtSessionVerifier.
func NewJWTSessionVerifier(cfg *config.Config) (service.SessionVerifier, error) {
	if cfg.Auth == nil || cfg.Auth.SessionSecret == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtSessionVerifier{
		secret: []byte(cfg.Auth.SessionSecret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// VerifySession checks signature and expiry and returns the subject as a user id.
func (v *jwtSessionVerifier) VerifySession(tokenString string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := v.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "parse session token")
	}
	if !token.Valid {
		return uuid.Nil, errors.New("session token invalid")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "session subject is not a user id")
	}

	return userID, nil
}
