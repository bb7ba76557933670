package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomail "gopkg.in/gomail.v2"

	"github.com/obrf/congresspay/internal/config"
	"github.com/obrf/congresspay/internal/domain"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func TestSendPaymentConfirmation(t *testing.T) {
	sender := &fakeSender{}
	s := New(&config.Config{MailFrom: "noreply@obrf.org", AppURL: "https://obrf.org"})
	s.sender = sender

	err := s.SendPaymentConfirmation(&domain.Registration{
		OrderID:       "REG_1",
		Amount:        2500,
		Currency:      "INR",
		CustomerName:  "Asha Rao",
		CustomerEmail: "asha@pharma.co",
	})
	assert.NoError(t, err)
	assert.Len(t, sender.sent, 1)
	assert.Equal(t, []string{"asha@pharma.co"}, sender.sent[0].GetHeader("To"))
}

func TestSendWithoutSMTPIsNoop(t *testing.T) {
	s := New(&config.Config{MailFrom: "noreply@obrf.org"})

	err := s.SendPaymentConfirmation(&domain.Registration{CustomerEmail: "asha@pharma.co"})
	assert.NoError(t, err)
}

func TestSendSponsorshipAlert(t *testing.T) {
	t.Run("Goes to the configured admin", func(t *testing.T) {
		sender := &fakeSender{}
		s := New(&config.Config{MailFrom: "noreply@obrf.org", AdminEmail: "admin@obrf.org"})
		s.sender = sender

		err := s.SendSponsorshipAlert(&domain.Sponsorship{ID: 7, CompanyName: "Endura Pharma"})
		assert.NoError(t, err)
		assert.Len(t, sender.sent, 1)
		assert.Equal(t, []string{"admin@obrf.org"}, sender.sent[0].GetHeader("To"))
	})

	t.Run("Skipped without an admin address", func(t *testing.T) {
		sender := &fakeSender{}
		s := New(&config.Config{MailFrom: "noreply@obrf.org"})
		s.sender = sender

		err := s.SendSponsorshipAlert(&domain.Sponsorship{ID: 7})
		assert.NoError(t, err)
		assert.Empty(t, sender.sent)
	})
}

func TestSendFailureIsWrapped(t *testing.T) {
	sender := &fakeSender{err: errors.New("connection refused")}
	s := New(&config.Config{MailFrom: "noreply@obrf.org"})
	s.sender = sender

	err := s.SendSponsorshipConfirmation(&domain.Sponsorship{Email: "asha@pharma.co"})
	assert.ErrorContains(t, err, "asha@pharma.co")
}
