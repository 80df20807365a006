package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Humayun167/green-nest/config"
	"github.com/Humayun167/green-nest/internal/dto"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

const (
	maxPublishRetries = 3
	publishTimeout    = 30 * time.Second
)

func CreateKafkaReader(config *config.Config) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:         []string{config.KafkaConfig.BrokerAddress},
		Topic:           config.KafkaConfig.BrokerTopic,
		GroupID:         config.KafkaConfig.ConsumerGroup,
		MinBytes:        1e3, // 1KB
		MaxBytes:        1e6, // 1MB
		MaxWait:         100 * time.Millisecond,
		ReadLagInterval: -1,
		StartOffset:     kafka.LastOffset,
		QueueCapacity:   1000,
	})
}

func CreateKafkaWriter(config *config.Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(config.KafkaConfig.BrokerAddress),
		Topic:                  config.KafkaConfig.BrokerTopic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

// MessageWriter is the part of *kafka.Writer the producer needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

var ErrProducerClosed = errors.New("kafka producer is closed")

// Producer delivers events in the background so request handlers never wait
// on the broker.
type Producer struct {
	writer  MessageWriter
	backoff time.Duration
	timeout time.Duration

	mu       sync.RWMutex
	closed   bool
	inflight sync.WaitGroup
}

func CreateProducer(writer MessageWriter) *Producer {
	return &Producer{
		writer:  writer,
		backoff: time.Second,
		timeout: publishTimeout,
	}
}

// Publish encodes msg and hands it to a background delivery. The delivery
// outlives the caller's context but is bounded by its own timeout.
func (p *Producer) Publish(ctx context.Context, key string, msg dto.KafkaMessage) error {
	value, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal Kafka message: %w", err)
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrProducerClosed
	}

	p.inflight.Add(1)
	go func() {
		defer p.inflight.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
		defer cancel()

		if err := p.deliver(ctx, kafka.Message{Key: []byte(key), Value: value}, msg.EventType); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "Publish").Str("event_type", msg.EventType).Str("key", key).Msg("event dropped")
		}
	}()

	return nil
}

// deliver writes message, retrying with a linear backoff.
func (p *Producer) deliver(ctx context.Context, message kafka.Message, eventType string) (err error) {
	for i := 0; i < maxPublishRetries; i++ {
		if err = p.writer.WriteMessages(ctx, message); err == nil {
			return nil
		}

		log.Ctx(ctx).Warn().Err(err).Str("component", "Publish").Str("event_type", eventType).
			Msgf("failed to write Kafka message (attempt %d/%d)", i+1, maxPublishRetries)

		if i == maxPublishRetries-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.backoff * time.Duration(i+1)):
		}
	}

	return fmt.Errorf("failed to write Kafka message after %d attempts: %w", maxPublishRetries, err)
}

// Close waits for in-flight deliveries, then closes the writer.
func (p *Producer) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	p.inflight.Wait()
	return p.writer.Close()
}

// NoopProducer drops every event. It is used when no broker is configured.
type NoopProducer struct{}

func (NoopProducer) Publish(ctx context.Context, key string, msg dto.KafkaMessage) error {
	log.Ctx(ctx).Debug().Str("component", "Publish").Str("event_type", msg.EventType).Msg("no broker configured, event dropped")
	return nil
}
