package notifications

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	config "github.com/hamzaOly/ezyskills/configs"
)

// PaymentEmailData is everything the confirmation mails need; it is copied
// out of the request before the payment transaction returns so the sends
// can run detached.
type PaymentEmailData struct {
	BundleTitle   string
	ProgramType   string
	Amount        decimal.Decimal
	CustomerName  string
	CustomerEmail string
	PaymentID     uuid.UUID
	PaymentDate   time.Time
}

// SendPaymentEmails notifies the customer and the platform admin about a
// recorded payment. Failures are logged only; the payment row is already
// committed and stands regardless.
func (s *EmailService) SendPaymentEmails(data PaymentEmailData) {
	customerHTML := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h1 style="color: #1e40af;">Payment Confirmed!</h1>
			<p>Hi %s,</p>
			<p>Thank you for your purchase. Here are your payment details:</p>
			<table style="width: 100%%; border-collapse: collapse;">
				<tr><td style="padding: 8px 0; color: #6b7280;">Bundle:</td><td style="padding: 8px 0;"><strong>%s</strong></td></tr>
				<tr><td style="padding: 8px 0; color: #6b7280;">Program Type:</td><td style="padding: 8px 0;">%s</td></tr>
				<tr><td style="padding: 8px 0; color: #6b7280;">Amount:</td><td style="padding: 8px 0; color: #059669;"><strong>%s</strong></td></tr>
				<tr><td style="padding: 8px 0; color: #6b7280;">Payment ID:</td><td style="padding: 8px 0; font-family: monospace;">#%s</td></tr>
				<tr><td style="padding: 8px 0; color: #6b7280;">Date:</td><td style="padding: 8px 0;">%s</td></tr>
			</table>
			<p>Our team will reach out shortly with your course access details.</p>
		</div>`,
		data.CustomerName, data.BundleTitle, data.ProgramType, data.Amount.StringFixed(2),
		data.PaymentID, data.PaymentDate.Format("2006-01-02 15:04:05"))

	s.SendEmail(data.CustomerName, data.CustomerEmail, "Payment Confirmed - "+data.BundleTitle, customerHTML)

	adminEmail := config.Config("ADMIN_EMAIL")
	if adminEmail == "" {
		return
	}

	adminHTML := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h1 style="color: #1e40af;">💰 New Payment Received!</h1>
			<table style="width: 100%%; border-collapse: collapse;">
				<tr><td style="padding: 8px 0; color: #6b7280;">Bundle:</td><td style="padding: 8px 0;"><strong>%s</strong></td></tr>
				<tr><td style="padding: 8px 0; color: #6b7280;">Program Type:</td><td style="padding: 8px 0;">%s</td></tr>
				<tr><td style="padding: 8px 0; color: #6b7280;">Amount:</td><td style="padding: 8px 0; color: #059669;"><strong>%s</strong></td></tr>
				<tr><td style="padding: 8px 0; color: #6b7280;">Customer:</td><td style="padding: 8px 0;">%s (%s)</td></tr>
				<tr><td style="padding: 8px 0; color: #6b7280;">Payment ID:</td><td style="padding: 8px 0; font-family: monospace;">#%s</td></tr>
			</table>
		</div>`,
		data.BundleTitle, data.ProgramType, data.Amount.StringFixed(2),
		data.CustomerName, data.CustomerEmail, data.PaymentID)

	s.SendEmail("Admin", adminEmail, "New Payment Received - "+data.BundleTitle, adminHTML)
}
