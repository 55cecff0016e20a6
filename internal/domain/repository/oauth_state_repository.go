package repository

import (
	"context"
	"time"

	"studio/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrOAuthStateInvalid is returned when a state is unknown, used or expired.
var ErrOAuthStateInvalid = errors.New("oauth state invalid")

// OAuthStateRepository stores single-use OAuth CSRF states.
type OAuthStateRepository interface {
	Create(ctx context.Context, state *entity.OAuthState) error

	// Consume atomically marks an unused, unexpired state as used and returns it.
	Consume(ctx context.Context, state string, now time.Time) (*entity.OAuthState, error)
}
