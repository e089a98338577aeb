package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReadingPosition is a reader's last location in a book.
type ReadingPosition struct {
	ReaderID   uuid.UUID
	Email      string
	BookID     string
	CFI        string
	Percentage float64
	Chapter    *string
	UpdatedAt  time.Time
}

// Reader is the identity behind a reader session: an email with at least
// one library grant.
type Reader struct {
	ID        uuid.UUID
	Email     string
	CreatedAt time.Time
}
