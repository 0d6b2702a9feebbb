package models

import (
	"time"
)

// User defines a learner account. The primary key is the identity provider's
// user id; account lifecycle is driven by provider webhook events, never by
// this API directly.
type User struct {
	ID    string `json:"id" db:"id" example:"user_2x8Kq"`
	Name  string `json:"name" db:"name" example:"Asha Verma"`
	Email string `json:"email" db:"email" example:"asha@example.com"`
	Image string `json:"image" db:"image"`
	Phone string `json:"phone,omitempty" db:"phone"`

	AddressStreet  string `json:"addressStreet,omitempty" db:"address_street"`
	AddressCity    string `json:"addressCity,omitempty" db:"address_city"`
	AddressState   string `json:"addressState,omitempty" db:"address_state"`
	AddressCountry string `json:"addressCountry,omitempty" db:"address_country"`
	AddressPincode string `json:"addressPincode,omitempty" db:"address_pincode"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// CartItem is one course reference in a student's cart. Cart membership is
// independent of purchase history; settlement drops already-owned entries.
type CartItem struct {
	StudentID string    `json:"studentId" db:"student_id"`
	CourseID  int64     `json:"courseId" db:"course_id"`
	AddedAt   time.Time `json:"addedAt" db:"added_at"`
}

// CartCourse is a cart entry resolved against the live course record, the
// projection the cart page and the settlement engine read.
type CartCourse struct {
	CourseID       int64     `json:"courseId"`
	Title          string    `json:"title"`
	Price          int64     `json:"price"`
	ThumbnailURL   string    `json:"thumbnailUrl"`
	Duration       string    `json:"duration"`
	AvailableSlots int       `json:"availableSlots"`
	AddedAt        time.Time `json:"addedAt"`
}
