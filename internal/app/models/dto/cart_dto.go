package dto

import "time"

// ToggleCartRequest names the course whose cart membership should flip
type ToggleCartRequest struct {
	CourseID int64 `json:"courseId" binding:"required" example:"42"`
}

// ToggleCartResponse reports the new membership state after a toggle
type ToggleCartResponse struct {
	CourseID int64 `json:"courseId"`
	InCart   bool  `json:"inCart"`
}

// CartResponse is the student's cart resolved against live course data
type CartResponse struct {
	Items []CartEntry `json:"items"`
	Total int64       `json:"total"`
}

// CartEntry is the projected view of one cart item
type CartEntry struct {
	CourseID     int64     `json:"courseId"`
	Title        string    `json:"title"`
	Price        int64     `json:"price"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	Duration     string    `json:"duration"`
	AddedAt      time.Time `json:"addedAt"`
}

// SettlementResponse summarizes a completed settlement
type SettlementResponse struct {
	TotalAmount    int64 `json:"totalAmount"`
	PurchasedCount int   `json:"purchasedCount"`
}

// AccessResponse answers whether a student may view course content
type AccessResponse struct {
	CourseID  int64 `json:"courseId"`
	HasAccess bool  `json:"hasAccess"`
}
