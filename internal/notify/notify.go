package notify

import (
	"fmt"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"github.com/obrf/congresspay/internal/config"
	"github.com/obrf/congresspay/internal/domain"
)

// Sender matches gomail's dialer so tests can swap the SMTP hop out.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailService sends transactional mail. When SMTP is not configured every
// send becomes a logged no-op, so a bare dev environment still completes
// payments and accepts applications.
type EmailService struct {
	sender     Sender
	from       string
	adminEmail string
	appURL     string
}

func New(cfg *config.Config) *EmailService {
	s := &EmailService{
		from:       cfg.MailFrom,
		adminEmail: cfg.AdminEmail,
		appURL:     cfg.AppURL,
	}
	if cfg.SMTPHost != "" {
		s.sender = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	}
	return s
}

func (s *EmailService) SendPaymentConfirmation(reg *domain.Registration) error {
	subject := "Registration confirmed"
	body := fmt.Sprintf(
		"Dear %s,\r\n\r\n"+
			"Your conference registration payment of %s %.2f has been received.\r\n"+
			"Registration reference: %s\r\n\r\n"+
			"See you at the conference!\r\n%s\r\n",
		reg.CustomerName, reg.Currency, reg.Amount, reg.OrderID, s.appURL)
	return s.send(reg.CustomerEmail, subject, body)
}

func (s *EmailService) SendSponsorshipConfirmation(sp *domain.Sponsorship) error {
	subject := "Sponsorship application received"
	body := fmt.Sprintf(
		"Dear %s,\r\n\r\n"+
			"Thank you for applying for the %s package on behalf of %s.\r\n"+
			"Your application id is %d. Our team will contact you shortly.\r\n\r\n%s\r\n",
		sp.ContactPerson, sp.SponsorshipType, sp.CompanyName, sp.ID, s.appURL)
	return s.send(sp.Email, subject, body)
}

func (s *EmailService) SendSponsorshipAlert(sp *domain.Sponsorship) error {
	if s.adminEmail == "" {
		zap.L().Debug("admin email not configured, alert skipped", zap.Int("id", sp.ID))
		return nil
	}
	subject := fmt.Sprintf("New sponsorship application: %s", sp.CompanyName)
	body := fmt.Sprintf(
		"Company: %s\r\nContact: %s (%s, %s)\r\nPackage: %s (%s)\r\nApplication id: %d\r\n",
		sp.CompanyName, sp.ContactPerson, sp.Email, sp.Phone,
		sp.SponsorshipType, sp.SponsorshipPrice, sp.ID)
	return s.send(s.adminEmail, subject, body)
}

func (s *EmailService) send(to, subject, body string) error {
	if s.sender == nil {
		zap.L().Info("smtp not configured, mail skipped",
			zap.String("to", to),
			zap.String("subject", subject))
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("can't send mail to %s: %w", to, err)
	}
	zap.L().Info("mail sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
