package service

import "github.com/google/uuid"

// SessionVerifier validates end-user session tokens issued by the hosted auth provider.
type SessionVerifier interface {
	// VerifySession returns the user id carried by a valid session token.
	VerifySession(token string) (uuid.UUID, error)
}

// TokenCipher seals OAuth secrets before they reach the database.
type TokenCipher interface {
	Seal(plaintext string) (string, error)
	Open(stored string) (string, error)
}
