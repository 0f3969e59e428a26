package domain

import (
	"time"

	"github.com/google/uuid"
)

// Base holds the attributes every entity carries. ID and CreatedAt are
// set once at construction; UpdatedAt moves forward on every mutation.
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newBase() Base {
	now := Now()
	return Base{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}
}

// Touch stamps UpdatedAt with a time strictly after its previous value.
func (b *Base) Touch() {
	b.UpdatedAt = After(b.UpdatedAt)
}

// Now is the current UTC time truncated to what both SQLite and
// PostgreSQL store without loss.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// After returns Now, or prev plus one microsecond when the clock has not
// advanced past prev.
func After(prev time.Time) time.Time {
	now := Now()
	if !now.After(prev) {
		return prev.Add(time.Microsecond)
	}
	return now
}
