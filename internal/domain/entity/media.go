package entity

import (
	"time"

	"github.com/google/uuid"
)

// Media is the local mirror of a photo or video attached to a location.
type Media struct {
	ID              uuid.UUID
	GMBAccountID    uuid.UUID
	LocationID      uuid.UUID
	ExternalMediaID string
	Type            string
	URL             string
	CreatedAt       *time.Time
	UpdatedAt       *time.Time
}
