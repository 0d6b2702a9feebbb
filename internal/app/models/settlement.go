package models

import (
	"time"

	"github.com/google/uuid"
)

// Revenue split applied to every settlement entry.
const (
	TeacherSharePercent  = 75
	PlatformSharePercent = 20
	TaxSharePercent      = 5
)

// SettlementEntry is one immutable ledger row written per purchased course
// inside the settlement transaction. It exists for auditability; aggregate
// counters on the course remain the fast path.
type SettlementEntry struct {
	ID            uuid.UUID `json:"id" db:"id"`
	StudentID     string    `json:"studentId" db:"student_id"`
	CourseID      int64     `json:"courseId" db:"course_id"`
	Amount        int64     `json:"amount" db:"amount"`
	TeacherShare  float64   `json:"teacherShare" db:"teacher_share"`
	PlatformShare float64   `json:"platformShare" db:"platform_share"`
	TaxShare      float64   `json:"taxShare" db:"tax_share"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// NewSettlementEntry builds a ledger entry for one purchase, applying the
// 75/20/5 split to the course price.
func NewSettlementEntry(studentID string, courseID int64, amount int64, at time.Time) SettlementEntry {
	return SettlementEntry{
		ID:            uuid.New(),
		StudentID:     studentID,
		CourseID:      courseID,
		Amount:        amount,
		TeacherShare:  float64(amount) * TeacherSharePercent / 100,
		PlatformShare: float64(amount) * PlatformSharePercent / 100,
		TaxShare:      float64(amount) * TaxSharePercent / 100,
		CreatedAt:     at,
	}
}
