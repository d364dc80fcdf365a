package email

import (
	"fmt"
	"net/smtp"
	"strings"
	"text/template"

	"creatorrate.app/cloud/internal/config"
	"creatorrate.app/cloud/internal/logger"
)

var paymentConfirmationTmpl = template.Must(template.New("payment_confirmation").Parse(`Hello {{.Name}},

Thank you for upgrading to CreatorRate Pro! Your subscription is now active.

WHAT'S UNLOCKED
- Unlimited brand deal tracking
- Earnings analytics for every platform
- One-click PDF media kits with your live rates

Open your dashboard to get started: {{.DashboardURL}}

NEED HELP?
Reply to this email or contact us at help@creatorrate.app

Best regards,
The CreatorRate Team`))

type PaymentConfirmation struct {
	Name         string
	DashboardURL string
}

// Sender delivers transactional mail over SMTP. The zero-config case is
// allowed: Send then fails with a config error that callers log and move
// past, mail is never load-bearing.
type Sender struct {
	cfg *config.Config
}

func NewSender(cfg *config.Config) *Sender {
	return &Sender{cfg: cfg}
}

func (s *Sender) Send(to, subject, body string) error {
	if s.cfg.SMTPHost == "" || s.cfg.SMTPPort == "" || s.cfg.SMTPUsername == "" || s.cfg.SMTPPassword == "" {
		logger.Error("SMTP configuration missing")
		return fmt.Errorf("SMTP configuration missing")
	}

	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)

	msg := []byte(fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"\r\n"+
		"%s\r\n", s.cfg.EmailFrom, to, subject, body))

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	return smtp.SendMail(addr, auth, s.cfg.EmailFrom, []string{to}, msg)
}

func (s *Sender) SendPaymentConfirmation(to string, data PaymentConfirmation) error {
	if data.Name == "" {
		data.Name = "there"
	}
	if data.DashboardURL == "" {
		data.DashboardURL = "https://creatorrate.app/dashboard"
	}

	body, err := RenderPaymentConfirmation(data)
	if err != nil {
		return err
	}

	return s.Send(to, "Welcome to CreatorRate Pro", body)
}

func RenderPaymentConfirmation(data PaymentConfirmation) (string, error) {
	var sb strings.Builder
	if err := paymentConfirmationTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render payment confirmation: %w", err)
	}
	return sb.String(), nil
}
