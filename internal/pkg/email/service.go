// internal/pkg/email/service.go
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/inquiry"
)

// Service sends staff notifications over SMTP
type Service struct {
	config *config.Config
	tmpl   *template.Template
}

// NewService creates a new email service
func NewService(cfg *config.Config) *Service {
	tmpl := template.New("inquiry_notification").Funcs(template.FuncMap{
		"divCents": func(cents int64) float64 { return float64(cents) / 100 },
	})
	return &Service{
		config: cfg,
		tmpl:   template.Must(tmpl.Parse(inquiryNotificationTemplate)),
	}
}

// NotifyNewInquiry emails the staff inbox about a freshly submitted
// order inquiry. Implements inquiry.Notifier.
func (s *Service) NotifyNewInquiry(ctx context.Context, inq *inquiry.Inquiry) error {
	if !s.config.Email.Enabled {
		return nil
	}

	var body bytes.Buffer
	data := struct {
		StoreName string
		Inquiry   *inquiry.Inquiry
		Total     float64
	}{
		StoreName: s.config.App.StoreName,
		Inquiry:   inq,
		Total:     inq.GetFormattedTotal(),
	}
	if err := s.tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render notification: %w", err)
	}

	subject := fmt.Sprintf("New order inquiry %s from %s", inq.Reference, inq.CustomerName)
	return s.send(ctx, []string{s.config.Email.StaffEmail}, subject, body.String())
}

// send delivers an HTML email via SMTP
func (s *Service) send(ctx context.Context, to []string, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	from := fmt.Sprintf("%s <%s>", s.config.Email.FromName, s.config.Email.FromEmail)

	var msg bytes.Buffer
	msg.WriteString(fmt.Sprintf("From: %s\r\n", from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(to, ", ")))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := fmt.Sprintf("%s:%d", s.config.Email.SMTPHost, s.config.Email.SMTPPort)

	var auth smtp.Auth
	if s.config.Email.SMTPUser != "" {
		auth = smtp.PlainAuth("", s.config.Email.SMTPUser, s.config.Email.SMTPPass, s.config.Email.SMTPHost)
	}

	if err := smtp.SendMail(addr, auth, s.config.Email.FromEmail, to, msg.Bytes()); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

const inquiryNotificationTemplate = `
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<h2>New order inquiry {{.Inquiry.Reference}}</h2>
	<p>
		<strong>{{.Inquiry.CustomerName}}</strong> submitted an order inquiry on {{.StoreName}}.
	</p>
	<p>
		Email: {{.Inquiry.Email}}<br>
		Phone: {{.Inquiry.Phone}}<br>
		{{if .Inquiry.Address}}Address: {{.Inquiry.Address}}<br>{{end}}
		{{if .Inquiry.Message}}Message: {{.Inquiry.Message}}{{end}}
	</p>
	<table border="1" cellpadding="6" cellspacing="0" style="border-collapse: collapse;">
		<tr>
			<th>Product</th><th>Size</th><th>Color</th><th>Qty</th><th>Unit</th><th>Subtotal</th>
		</tr>
		{{range .Inquiry.Lines}}
		<tr>
			<td>{{.ProductName}}</td>
			<td>{{.Size}}</td>
			<td>{{.Color}}</td>
			<td>{{.Quantity}}</td>
			<td>{{printf "%.2f" (divCents .UnitPrice)}}</td>
			<td>{{printf "%.2f" (divCents .Subtotal)}}</td>
		</tr>
		{{end}}
	</table>
	<p><strong>Total: {{printf "%.2f" .Total}}</strong> ({{.Inquiry.ItemCount}} items)</p>
	<p>Contact the customer to confirm the order and arrange payment.</p>
</body>
</html>
`
