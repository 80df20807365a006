package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Humayun167/green-nest/internal/dto"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

// MessageReader is the consuming side of the broker.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type NotificationServiceImpl struct {
	reader MessageReader
	mailer Mailer
}

// CreateNotificationService wires the event consumer. mailer may be nil, in
// which case notifications are only logged.
func CreateNotificationService(reader MessageReader, mailer Mailer) NotificationService {
	return &NotificationServiceImpl{
		reader: reader,
		mailer: mailer,
	}
}

// ConsumeEvents reads events until ctx is cancelled.
func (s *NotificationServiceImpl) ConsumeEvents(ctx context.Context) {
	if s.reader == nil {
		return
	}

	for {
		msg, err := s.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Error().Err(err).Str("component", "ConsumeEvents").Msg("")
			continue
		}

		if err := s.HandleMessage(ctx, msg.Value); err != nil {
			log.Error().Err(err).Str("component", "ConsumeEvents").Int64("offset", msg.Offset).Msg("")
		}
	}
}

func (s *NotificationServiceImpl) HandleMessage(ctx context.Context, value []byte) (err error) {
	var received dto.ReceivedKafkaMessage
	if err = json.Unmarshal(value, &received); err != nil {
		return fmt.Errorf("decoding event: %w", err)
	}

	switch received.EventType {
	case dto.EventProductRequestApproved, dto.EventProductRequestRejected:
		var event dto.ProductRequestDecisionEvent
		if err = json.Unmarshal(received.Data, &event); err != nil {
			return fmt.Errorf("decoding %s: %w", received.EventType, err)
		}
		return s.notifyDecision(ctx, received.EventType, event)
	default:
		log.Debug().Str("component", "HandleMessage").Str("event_type", received.EventType).Msg("no notification for event")
	}

	return nil
}

func (s *NotificationServiceImpl) notifyDecision(ctx context.Context, eventType string, event dto.ProductRequestDecisionEvent) error {
	if event.UserEmail == "" {
		return errors.New("decision event without recipient")
	}

	subject, body := decisionEmail(eventType, event)

	if s.mailer == nil {
		log.Info().Str("component", "notifyDecision").Str("request_id", event.RequestID).Str("subject", subject).Msg("mail disabled, notification logged")
		return nil
	}

	if err := s.mailer.Send(ctx, event.UserEmail, subject, body); err != nil {
		return fmt.Errorf("sending decision email: %w", err)
	}

	return nil
}

func decisionEmail(eventType string, event dto.ProductRequestDecisionEvent) (subject string, body string) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hi %s,\n\n", event.UserName)

	if eventType == dto.EventProductRequestApproved {
		subject = fmt.Sprintf("Your product \"%s\" is now on Green Nest", event.ProductName)
		fmt.Fprintf(&sb, "Good news! \"%s\" was approved and is now listed in the store.\n", event.ProductName)
	} else {
		subject = fmt.Sprintf("Your product \"%s\" was not approved", event.ProductName)
		fmt.Fprintf(&sb, "\"%s\" was not approved.\nReason: %s\n", event.ProductName, event.RejectionReason)
	}

	if event.SellerNotes != "" {
		fmt.Fprintf(&sb, "\nNotes from the seller: %s\n", event.SellerNotes)
	}
	sb.WriteString("\nGreen Nest")

	return subject, sb.String()
}
