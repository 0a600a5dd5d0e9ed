package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account known to the platform. Accounts are created by the
// external identity service; this backend only reads them.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	AvatarURL *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Summary returns the public projection of the user.
func (u User) Summary() OwnerSummary {
	return OwnerSummary{ID: u.ID, Name: u.Name, AvatarURL: u.AvatarURL}
}
