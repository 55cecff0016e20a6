package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Location is the local mirror of a Business Profile location.
type Location struct {
	ID           uuid.UUID
	GMBAccountID uuid.UUID
	UserID       uuid.UUID
	LocationID   string // Google resource name, e.g. "locations/456".
	Name         string
	Address      string
	Phone        string
	Category     string
	Website      string
	IsActive     bool
	Metadata     json.RawMessage
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
