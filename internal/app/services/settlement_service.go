package services

import (
	"context"
	"time"

	"github.com/skillbridge/skillbridge-backend/internal/app/models"
	"github.com/skillbridge/skillbridge-backend/internal/app/models/dto"
	"github.com/skillbridge/skillbridge-backend/internal/app/repositories"
	"github.com/skillbridge/skillbridge-backend/internal/pkg/apperrors"
	"github.com/skillbridge/skillbridge-backend/internal/pkg/logger"
	"github.com/skillbridge/skillbridge-backend/internal/pkg/notification"
)

// SettlementService settles a student's cart into enrollments. The whole
// settlement is one database transaction: either every eligible course is
// purchased or none is.
type SettlementService struct {
	runner   repositories.SettlementRunner
	notifier notification.Notifier
}

// NewSettlementService creates a new settlement service instance
func NewSettlementService(runner repositories.SettlementRunner, notifier notification.Notifier) *SettlementService {
	return &SettlementService{
		runner:   runner,
		notifier: notifier,
	}
}

// SettleCart purchases every course in the student's cart that the student
// does not already own.
//
// Courses already owned are skipped, so retrying after a partial client
// failure never double-charges. If any remaining course has no free slots
// the entire settlement aborts and the error names every such course.
// The cart is cleared in the same transaction.
func (s *SettlementService) SettleCart(ctx context.Context, studentID string) (*dto.SettlementResponse, error) {
	var (
		result  dto.SettlementResponse
		receipt notification.PurchaseReceipt
	)

	err := s.runner.InSettlementTx(ctx, func(ctx context.Context, store repositories.SettlementStore) error {
		student, err := store.StudentByID(ctx, studentID)
		if err != nil {
			return err
		}

		cart, err := store.CartWithCourses(ctx, studentID)
		if err != nil {
			return err
		}
		if len(cart) == 0 {
			return apperrors.ErrEmptyCart
		}

		owned, err := store.PurchasedCourseIDs(ctx, studentID)
		if err != nil {
			return err
		}

		var pending []models.CartCourse
		for _, item := range cart {
			if _, ok := owned[item.CourseID]; ok {
				continue
			}
			pending = append(pending, item)
		}

		// Claim every slot before writing anything else so the error can
		// name all exhausted courses, not just the first one.
		var exhausted []string
		for _, item := range pending {
			claimed, err := store.ClaimSlot(ctx, item.CourseID)
			if err != nil {
				return err
			}
			if !claimed {
				exhausted = append(exhausted, item.Title)
			}
		}
		if len(exhausted) > 0 {
			return apperrors.NewSlotsExhaustedError(exhausted)
		}

		now := time.Now()
		for _, item := range pending {
			err := store.AddEnrollment(ctx, models.Enrollment{
				CourseID:     item.CourseID,
				StudentID:    studentID,
				StudentEmail: student.Email,
				EnrolledAt:   now,
			})
			if err != nil {
				return err
			}

			entry := models.NewSettlementEntry(studentID, item.CourseID, item.Price, now)
			if err := store.RecordSettlement(ctx, entry); err != nil {
				return err
			}

			result.TotalAmount += item.Price
			result.PurchasedCount++
			receipt.CourseTitles = append(receipt.CourseTitles, item.Title)
		}

		// Items skipped as already owned leave the cart too.
		if err := store.ClearCart(ctx, studentID); err != nil {
			return err
		}

		receipt.StudentName = student.Name
		receipt.StudentEmail = student.Email
		receipt.TotalAmount = result.TotalAmount

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("studentId", studentID).
		Int("purchased", result.PurchasedCount).
		Int64("totalAmount", result.TotalAmount).
		Msg("Cart settled")

	if result.PurchasedCount > 0 {
		s.notifier.SendPurchaseReceipt(ctx, receipt)
	}

	return &result, nil
}
