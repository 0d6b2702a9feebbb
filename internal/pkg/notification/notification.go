package notification

import (
	"context"

	"github.com/skillbridge/skillbridge-backend/internal/pkg/logger"
)

// PurchaseReceipt describes a completed settlement for one student.
type PurchaseReceipt struct {
	StudentName  string
	StudentEmail string
	CourseTitles []string
	TotalAmount  int64
}

// Notifier delivers purchase receipts. Delivery failures must never surface
// to the caller; a settled purchase stays settled whether or not the email
// goes out.
type Notifier interface {
	SendPurchaseReceipt(ctx context.Context, receipt PurchaseReceipt)
}

// NoopNotifier logs receipts instead of delivering them. Used in development
// when no SendGrid key is configured.
type NoopNotifier struct{}

var _ Notifier = (*NoopNotifier)(nil)

func (NoopNotifier) SendPurchaseReceipt(_ context.Context, receipt PurchaseReceipt) {
	logger.Info().
		Str("email", receipt.StudentEmail).
		Int64("totalAmount", receipt.TotalAmount).
		Int("courses", len(receipt.CourseTitles)).
		Msg("Purchase receipt (delivery disabled)")
}
