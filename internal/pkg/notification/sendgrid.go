package notification

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/skillbridge/skillbridge-backend/internal/pkg/logger"
)

var (
	host     = "https://api.sendgrid.com"
	endpoint = "/v3/mail/send"
)

// SendgridNotifier delivers purchase receipts through the SendGrid API.
type SendgridNotifier struct {
	key  string
	from *sgmail.Email
}

var _ Notifier = (*SendgridNotifier)(nil)

// NewSendgridNotifier creates a SendGrid-backed notifier
func NewSendgridNotifier(key, fromName, fromEmail string) *SendgridNotifier {
	return &SendgridNotifier{
		key:  key,
		from: sgmail.NewEmail(fromName, fromEmail),
	}
}

// SendPurchaseReceipt delivers the receipt in a background goroutine.
// Failures are logged and swallowed.
func (n *SendgridNotifier) SendPurchaseReceipt(_ context.Context, receipt PurchaseReceipt) {
	if receipt.StudentEmail == "" {
		return
	}

	go n.send(receipt)
}

func (n *SendgridNotifier) send(receipt PurchaseReceipt) {
	p := sgmail.NewPersonalization()
	p.Subject = "Your course purchase is confirmed"
	p.AddTos(sgmail.NewEmail(receipt.StudentName, receipt.StudentEmail))

	m := sgmail.NewV3Mail()
	m.SetFrom(n.from)
	m.AddPersonalizations(p)
	m.AddContent(
		sgmail.NewContent("text/plain", n.textBody(receipt)),
		sgmail.NewContent("text/html", n.htmlBody(receipt)),
	)

	req := sendgrid.GetRequest(n.key, endpoint, host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(m)

	res, err := sendgrid.API(req)
	if err != nil {
		logger.Error().Err(err).Str("email", receipt.StudentEmail).Msg("Failed to send purchase receipt")
	} else if res.StatusCode >= http.StatusBadRequest {
		logger.Error().
			Int("status", res.StatusCode).
			Str("email", receipt.StudentEmail).
			Msg("SendGrid rejected purchase receipt")
	}
}

func (n *SendgridNotifier) textBody(receipt PurchaseReceipt) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\nThanks for your purchase. You now have access to:\n\n", receipt.StudentName)
	for _, title := range receipt.CourseTitles {
		fmt.Fprintf(&b, "  - %s\n", title)
	}
	fmt.Fprintf(&b, "\nTotal paid: %d\n\nHappy learning!\n", receipt.TotalAmount)
	return b.String()
}

func (n *SendgridNotifier) htmlBody(receipt PurchaseReceipt) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<p>Hi %s,</p><p>Thanks for your purchase. You now have access to:</p><ul>", receipt.StudentName)
	for _, title := range receipt.CourseTitles {
		fmt.Fprintf(&b, "<li>%s</li>", title)
	}
	fmt.Fprintf(&b, "</ul><p>Total paid: %d</p><p>Happy learning!</p>", receipt.TotalAmount)
	return b.String()
}
