package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a rated message left on a specific car listing.
type Comment struct {
	Id        uuid.UUID
	CarId     uuid.UUID
	UserId    uuid.UUID
	Content   string
	Rating    int
	CreatedAt time.Time

	// Author name, populated on read.
	UserName string
}

// Review is a site-wide rating, not attached to any car. A user may leave
// at most one.
type Review struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time

	UserName string
}
