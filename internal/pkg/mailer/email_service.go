package mailer

import (
	"errors"
	"fmt"
	"html"

	"samvidhan-be/internal/pkg/logger"

	"gopkg.in/gomail.v2"
)

var ErrMailerDisabled = errors.New("mailer is not configured")

const (
	PurposeSignup         = "signup"
	PurposePasswordReset  = "password_reset"
	PurposePasswordChange = "password_change"
)

type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type IEmailService interface {
	SendOTP(toEmail, otp, purpose string) error
	SendContactMessage(toEmail string, msg ContactMessage) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	logger      logger.ILogger
}

// NewEmailService returns a mailer that reports ErrMailerDisabled on every send
// when no SMTP account is configured.
func NewEmailService(host string, port int, username, password, senderName string, log logger.ILogger) IEmailService {
	var d *gomail.Dialer
	if host != "" && username != "" {
		d = gomail.NewDialer(host, port, username, password)
	}

	return &emailService{
		dialer:      d,
		senderEmail: username,
		senderName:  senderName,
		logger:      log,
	}
}

func otpSubject(purpose string) string {
	switch purpose {
	case PurposePasswordReset:
		return "Reset your SamvidhanAI password"
	case PurposePasswordChange:
		return "Confirm your SamvidhanAI password change"
	default:
		return "Your SamvidhanAI verification code"
	}
}

func (s *emailService) send(m *gomail.Message, to, kind string) error {
	if s.dialer == nil {
		s.logger.Warn("MAILER", "SMTP not configured, mail skipped", map[string]interface{}{"to": to, "kind": kind})
		return ErrMailerDisabled
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Error("MAILER", "send failed", map[string]interface{}{"to": to, "kind": kind, "error": err})
		return err
	}

	s.logger.Info("MAILER", "mail sent", map[string]interface{}{"to": to, "kind": kind})
	return nil
}

func (s *emailService) SendOTP(toEmail, otp, purpose string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", otpSubject(purpose))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>SamvidhanAI</h2>
			<p>Your one-time code is:</p>
			<h1 style="color: #1a237e; letter-spacing: 5px;">%s</h1>
			<p>This code will expire in 10 minutes.</p>
			<p>If you didn't request this, please ignore this email.</p>
		</div>
	`, html.EscapeString(otp))
	m.SetBody("text/html", body)

	return s.send(m, toEmail, "otp:"+purpose)
}

func (s *emailService) SendContactMessage(toEmail string, msg ContactMessage) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Reply-To", msg.Email)
	m.SetHeader("Subject", "Contact form: "+msg.Subject)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New contact message</h2>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Subject:</strong> %s</p>
			<p>%s</p>
		</div>
	`, html.EscapeString(msg.Name), html.EscapeString(msg.Email), html.EscapeString(msg.Subject), html.EscapeString(msg.Message))
	m.SetBody("text/html", body)

	return s.send(m, toEmail, "contact")
}
