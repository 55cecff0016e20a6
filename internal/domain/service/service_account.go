package service

import (
	"context"

	"studio/internal/domain/entity"
)

// ServiceAccountTokenSource mints access tokens for the platform service account.
type ServiceAccountTokenSource interface {
	Token(ctx context.Context) (*entity.Token, error)
}
