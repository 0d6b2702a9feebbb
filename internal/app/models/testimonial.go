package models

import (
	"time"
)

// Testimonial is one entry on the public testimonial wall.
type Testimonial struct {
	ID          int64     `json:"id" db:"id"`
	UserID      string    `json:"userId" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Role        string    `json:"role" db:"role" example:"Learner"`
	Message     string    `json:"message" db:"message"`
	Avatar      string    `json:"avatar" db:"avatar"`
	Rating      int       `json:"rating" db:"rating" example:"5"`
	Achievement string    `json:"achievement" db:"achievement" example:"Verified Learner"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
