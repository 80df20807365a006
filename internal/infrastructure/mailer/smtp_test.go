package mailer

import (
	"context"
	"testing"
	"time"

	"github.com/Humayun167/green-nest/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

func TestSMTPMailer_Send(t *testing.T) {
	smtpConfig := config.SMTPConfig{Sender: "shop@greennest.com"}

	t.Run("Builds the message from the configured sender", func(t *testing.T) {
		m := CreateSMTPMailer(smtpConfig)
		var sent *gomail.Message
		m.send = func(message *gomail.Message) error {
			sent = message
			return nil
		}

		require.NoError(t, m.Send(context.Background(), "ana@example.com", "Order placed", "Thanks"))
		require.NotNil(t, sent)
		assert.Equal(t, []string{"shop@greennest.com"}, sent.GetHeader("From"))
		assert.Equal(t, []string{"ana@example.com"}, sent.GetHeader("To"))
		assert.Equal(t, []string{"Order placed"}, sent.GetHeader("Subject"))
	})

	t.Run("Cancelled context skips the dial", func(t *testing.T) {
		m := CreateSMTPMailer(smtpConfig)
		called := false
		m.send = func(message *gomail.Message) error {
			called = true
			return nil
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, m.Send(ctx, "ana@example.com", "s", "b"), context.Canceled)
		assert.False(t, called)
	})

	t.Run("Deadline releases the caller from a stuck server", func(t *testing.T) {
		m := CreateSMTPMailer(smtpConfig)
		unblock := make(chan struct{})
		defer close(unblock)
		m.send = func(message *gomail.Message) error {
			<-unblock
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		assert.ErrorIs(t, m.Send(ctx, "ana@example.com", "s", "b"), context.DeadlineExceeded)
	})
}
