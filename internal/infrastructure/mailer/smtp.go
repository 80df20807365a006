package mailer

import (
	"context"

	"github.com/Humayun167/green-nest/config"
	"github.com/Humayun167/green-nest/pkg/utils"
	"gopkg.in/gomail.v2"
)

type SMTPMailer struct {
	config config.SMTPConfig
	send   func(message *gomail.Message) error
}

func CreateSMTPMailer(config config.SMTPConfig) *SMTPMailer {
	m := &SMTPMailer{config: config}
	m.send = func(message *gomail.Message) error {
		return utils.SendEmail(message, config.Sender, config.Password, config.Server, config.Port)
	}
	return m
}

// Send delivers a plain text email. gomail cannot abort a dial, so a
// cancelled ctx releases the caller while the attempt finishes on its own.
func (m *SMTPMailer) Send(ctx context.Context, to string, subject string, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	message := gomail.NewMessage()
	message.SetHeader("From", m.config.Sender)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/plain", body)

	done := make(chan error, 1)
	go func() {
		done <- m.send(message)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
