package models

import (
	"time"

	"github.com/google/uuid"
)

// BlogDB represents a blog row in the database
type BlogDB struct {
	ID        uuid.UUID `json:"id" db:"id"`                 // Primary key
	Title     string    `json:"title" db:"title"`           // Post title
	Body      string    `json:"body" db:"body"`             // Post body
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Owner (creator) of the post
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// BlogFilter narrows a blog listing. A nil OwnerID lists every post.
type BlogFilter struct {
	OwnerID *uuid.UUID
}
