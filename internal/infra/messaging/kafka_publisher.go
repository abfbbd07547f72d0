package messaging

import (
	"context"
	"log/slog"
	"time"

	"coliving-payments/internal/pkg/config"
	"coliving-payments/internal/pkg/errs"
	"coliving-payments/internal/usecase/commands"
	"coliving-payments/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

const (
	HeaderEventKind = "event-kind"
	HeaderEventID   = "event-id"
)

// messageWriter is satisfied by *kafka.Writer.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer messageWriter
	topic  string
}

// NewKafkaPublisher keys messages by booking id so one booking's events stay
// ordered on a single partition.
func NewKafkaPublisher(cfg config.OutboxConfig) (*KafkaPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errs.New("at least one kafka broker is required")
	}
	if cfg.Topic == "" {
		return nil, errs.New("kafka topic cannot be empty")
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		BatchTimeout: 50 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			slog.Error("kafka writer error", "detail", msg, "args", args)
		}),
	}
	return newKafkaPublisher(w, cfg.Topic), nil
}

func newKafkaPublisher(w messageWriter, topic string) *KafkaPublisher {
	return &KafkaPublisher{writer: w, topic: topic}
}

func (p *KafkaPublisher) Publish(ctx context.Context, events []shared.BookingEvent) error {
	if len(events) == 0 {
		return nil
	}
	msgs := make([]kafka.Message, len(events))
	for i, ev := range events {
		msgs[i] = kafka.Message{
			Key:   []byte(ev.BookingID.String()),
			Value: ev.Payload,
			Time:  ev.CreatedAt,
			Headers: []kafka.Header{
				{Key: HeaderEventKind, Value: []byte(ev.Kind)},
				{Key: HeaderEventID, Value: []byte(ev.ID.String())},
			},
		}
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return errs.Wrapf(err, "failed to publish %d booking events to %s", len(msgs), p.topic)
	}
	slog.Debug("booking events published", "topic", p.topic, "count", len(msgs))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// LogPublisher stands in when no broker is configured. Events are logged and
// acknowledged so the outbox does not grow without bound.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (LogPublisher) Publish(_ context.Context, events []shared.BookingEvent) error {
	for _, ev := range events {
		slog.Info("booking event",
			"event_id", ev.ID.String(),
			"booking_id", ev.BookingID.String(),
			"kind", string(ev.Kind))
	}
	return nil
}

var (
	_ commands.EventPublisher = (*KafkaPublisher)(nil)
	_ commands.EventPublisher = LogPublisher{}
)
