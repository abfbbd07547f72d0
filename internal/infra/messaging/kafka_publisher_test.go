//go:build unit

package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"coliving-payments/internal/pkg/config"
	"coliving-payments/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestKafkaPublisher_Publish(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()
	ev := shared.BookingEvent{
		ID:        uuid.New(),
		BookingID: bookingID,
		Kind:      shared.BookingCancelled,
		Payload:   []byte(`{"booking_id":"x"}`),
		CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	t.Run("success: keys by booking and tags the kind", func(t *testing.T) {
		w := &fakeWriter{}
		p := newKafkaPublisher(w, "booking-events")

		require.NoError(t, p.Publish(ctx, []shared.BookingEvent{ev}))
		require.Len(t, w.msgs, 1)
		msg := w.msgs[0]
		assert.Equal(t, bookingID.String(), string(msg.Key))
		assert.Equal(t, ev.Payload, msg.Value)
		assert.Equal(t, ev.CreatedAt, msg.Time)
		assert.Contains(t, msg.Headers, kafka.Header{Key: HeaderEventKind, Value: []byte("booking.cancelled")})
		assert.Contains(t, msg.Headers, kafka.Header{Key: HeaderEventID, Value: []byte(ev.ID.String())})
	})

	t.Run("success: empty batch writes nothing", func(t *testing.T) {
		w := &fakeWriter{}
		require.NoError(t, newKafkaPublisher(w, "t").Publish(ctx, nil))
		assert.Empty(t, w.msgs)
	})

	t.Run("error: writer failure is returned", func(t *testing.T) {
		w := &fakeWriter{err: errors.New("leader not available")}
		err := newKafkaPublisher(w, "t").Publish(ctx, []shared.BookingEvent{ev})
		assert.ErrorContains(t, err, "leader not available")
	})
}

func TestNewKafkaPublisher(t *testing.T) {
	_, err := NewKafkaPublisher(config.OutboxConfig{Topic: "t"})
	assert.Error(t, err)

	_, err = NewKafkaPublisher(config.OutboxConfig{Brokers: []string{"localhost:9092"}})
	assert.Error(t, err)

	p, err := NewKafkaPublisher(config.OutboxConfig{Brokers: []string{"localhost:9092"}, Topic: "booking-events"})
	require.NoError(t, err)
	assert.NoError(t, p.Close())
}
