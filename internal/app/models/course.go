package models

import (
	"time"
)

// Course represents one offered learning unit. A course is authored by a
// teacher, sits in the pending state until an admin approves it, and only
// then becomes visible to students.
type Course struct {
	ID          int64       `json:"id" db:"id" example:"1"`
	Title       string      `json:"title" db:"title" example:"Full Stack Web Development"`
	Description string      `json:"description" db:"description"`
	Category    string      `json:"category" db:"category" example:"General"`
	Level       CourseLevel `json:"level" db:"level" example:"Beginner"`
	Duration    string      `json:"duration" db:"duration" example:"8 weeks"`

	// Price is in whole currency units and is locked after creation.
	Price int64 `json:"price" db:"price" example:"499"`

	TotalSlots     int `json:"totalSlots" db:"total_slots" example:"50"`
	AvailableSlots int `json:"availableSlots" db:"available_slots" example:"50"`

	ThumbnailURL string `json:"thumbnailUrl" db:"thumbnail_url"`
	YoutubeURL   string `json:"youtubeUrl" db:"youtube_url"`
	Notes        string `json:"notes,omitempty" db:"notes"`

	// CreatedBy is the authoring teacher's identity-provider id.
	CreatedBy string `json:"createdBy" db:"created_by"`

	IsApproved bool       `json:"isApproved" db:"is_approved"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty" db:"approved_at"`

	// Aggregates mutated only by the settlement engine.
	TotalEnrolled int   `json:"totalEnrolled" db:"total_enrolled"`
	TotalRevenue  int64 `json:"totalRevenue" db:"total_revenue"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// TeacherName is populated on admin pending listings, "Unknown" when the
	// teacher record no longer resolves.
	TeacherName string `json:"teacherName,omitempty"`
}

// Enrollment is one student's paid admission into a course. Rows are
// append-only; (CourseID, StudentID) is unique.
type Enrollment struct {
	CourseID     int64     `json:"courseId" db:"course_id"`
	StudentID    string    `json:"studentId" db:"student_id"`
	StudentEmail string    `json:"studentEmail" db:"student_email"`
	EnrolledAt   time.Time `json:"enrolledAt" db:"enrolled_at"`
}
