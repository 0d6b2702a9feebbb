package models

import (
	"time"
)

// Teacher is an authoring profile keyed by the identity provider's user id.
// Dashboard aggregates (course/student/revenue totals) are not stored here;
// they are computed from courses and the settlement ledger at read time.
type Teacher struct {
	ID              string `json:"id" db:"id"`
	Name            string `json:"name" db:"name"`
	Email           string `json:"email" db:"email"`
	Image           string `json:"image" db:"image"`
	Phone           string `json:"phone,omitempty" db:"phone"`
	Bio             string `json:"bio,omitempty" db:"bio"`
	Specialization  string `json:"specialization,omitempty" db:"specialization"`
	Skills          string `json:"skills,omitempty" db:"skills"`
	WorkingAt       string `json:"workingAt,omitempty" db:"working_at"`
	ExperienceYears int    `json:"experienceYears,omitempty" db:"experience_years"`
	Location        string `json:"location,omitempty" db:"location"`
	Website         string `json:"website,omitempty" db:"website"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// TeacherStats is the read-only dashboard aggregate for one teacher. The
// revenue split is 75/20/5 (teacher/platform/tax) and is derived, never
// persisted as authoritative state.
type TeacherStats struct {
	TeacherID     string  `json:"teacherId"`
	TotalCourses  int     `json:"totalCourses"`
	TotalStudents int     `json:"totalStudents"`
	TotalRevenue  int64   `json:"totalRevenue"`
	TeacherShare  float64 `json:"teacherShare"`
	PlatformShare float64 `json:"platformShare"`
	TaxShare      float64 `json:"taxShare"`
}
