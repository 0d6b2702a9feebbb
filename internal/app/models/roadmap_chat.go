package models

import (
	"time"
)

// RoadmapChat is one generated career roadmap kept as chat history for a user.
type RoadmapChat struct {
	ID        int64     `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	UserEmail string    `json:"userEmail" db:"user_email"`
	Topic     string    `json:"topic" db:"topic" example:"Full Stack Developer"`
	Goal      string    `json:"goal,omitempty" db:"goal"`
	Roadmap   string    `json:"roadmap" db:"roadmap"` // markdown
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
