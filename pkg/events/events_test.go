package events

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SlavaShagalov/rentx/internal/models"
)

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeWriter struct {
	mu       sync.Mutex
	err      error
	messages []kafka.Message
	calls    int
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.calls++
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

type fakeReader struct {
	mu       sync.Mutex
	messages []kafka.Message
	pos      int
	rewinds  []int64
}

func (r *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	if r.pos >= len(r.messages) {
		r.mu.Unlock()
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	msg := r.messages[r.pos]
	r.pos++
	r.mu.Unlock()
	return msg, nil
}

func (r *fakeReader) position() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pos
}

func (r *fakeReader) SetOffset(offset int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rewinds = append(r.rewinds, offset)
	for i, msg := range r.messages {
		if msg.Offset == offset {
			r.pos = i
		}
	}
	return nil
}

func (r *fakeReader) Close() error { return nil }

type fakeStore struct {
	failures int
	saved    []models.RentalEvent
}

func (s *fakeStore) Save(_ context.Context, event models.RentalEvent) error {
	if s.failures > 0 {
		s.failures--
		return errors.New("db is down")
	}
	s.saved = append(s.saved, event)
	return nil
}

func newEvent() models.RentalEvent {
	total := int64(280)
	return models.RentalEvent{
		ID:         uuid.New(),
		RentalID:   uuid.New(),
		CarID:      uuid.New(),
		UserID:     uuid.New(),
		Kind:       models.RentalClosed,
		Total:      &total,
		OccurredAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestEncode(t *testing.T) {
	event := newEvent()

	msg, err := Encode(event)
	require.NoError(t, err)
	assert.Equal(t, event.RentalID.String(), string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, string(models.RentalClosed), string(msg.Headers[0].Value))

	decoded, err := Decode(msg)
	require.NoError(t, err)
	assert.Equal(t, event, decoded)
}

func TestKafkaPublisher_Publish(t *testing.T) {
	writer := &fakeWriter{}
	publisher := NewKafkaPublisher(writer, BreakerSettings{ConsecutiveFailures: 3, Timeout: time.Minute}, logger)
	event := newEvent()

	require.NoError(t, publisher.Publish(context.Background(), event))
	require.Len(t, writer.messages, 1)
	assert.Equal(t, event.RentalID.String(), string(writer.messages[0].Key))
	assert.NoError(t, publisher.HealthCheck(context.Background()))
}

func TestKafkaPublisher_BreakerOpens(t *testing.T) {
	writer := &fakeWriter{err: errors.New("broker unreachable")}
	publisher := NewKafkaPublisher(writer, BreakerSettings{ConsecutiveFailures: 2, Timeout: time.Minute}, logger)
	ctx := context.Background()

	assert.Error(t, publisher.Publish(ctx, newEvent()))
	assert.Error(t, publisher.Publish(ctx, newEvent()))

	err := publisher.Publish(ctx, newEvent())
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 2, writer.calls)
	assert.Error(t, publisher.HealthCheck(ctx))
}

func TestKafkaPublisher_NoWriter(t *testing.T) {
	publisher := NewKafkaPublisher(nil, BreakerSettings{}, logger)

	assert.ErrorIs(t, publisher.Publish(context.Background(), newEvent()), ErrNoWriter)
}

func TestConsumer_Consume(t *testing.T) {
	ctx := context.Background()

	t.Run("stores event", func(t *testing.T) {
		event := newEvent()
		msg, err := Encode(event)
		require.NoError(t, err)
		msg.Offset = 7

		reader := &fakeReader{messages: []kafka.Message{msg}}
		store := &fakeStore{}

		require.NoError(t, NewConsumer(reader, store, logger).Consume(ctx))
		assert.Equal(t, []models.RentalEvent{event}, store.saved)
		assert.Empty(t, reader.rewinds)
	})

	t.Run("rewinds when store fails", func(t *testing.T) {
		msg, err := Encode(newEvent())
		require.NoError(t, err)
		msg.Offset = 7

		reader := &fakeReader{messages: []kafka.Message{msg}}
		store := &fakeStore{failures: 1}
		consumer := NewConsumer(reader, store, logger)

		assert.Error(t, consumer.Consume(ctx))
		assert.Equal(t, []int64{7}, reader.rewinds)

		require.NoError(t, consumer.Consume(ctx))
		assert.Len(t, store.saved, 1)
	})

	t.Run("drops malformed message", func(t *testing.T) {
		reader := &fakeReader{messages: []kafka.Message{{Offset: 3, Value: []byte("{")}}}
		store := &fakeStore{}

		require.NoError(t, NewConsumer(reader, store, logger).Consume(ctx))
		assert.Empty(t, store.saved)
		assert.Empty(t, reader.rewinds)
	})

	t.Run("no reader", func(t *testing.T) {
		assert.ErrorIs(t, NewConsumer(nil, &fakeStore{}, logger).Consume(ctx), ErrNoReader)
	})
}

func TestConsumer_RunStopsOnCancel(t *testing.T) {
	msg, err := Encode(newEvent())
	require.NoError(t, err)

	reader := &fakeReader{messages: []kafka.Message{msg}}
	store := &fakeStore{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewConsumer(reader, store, logger).Run(ctx) }()

	require.Eventually(t, func() bool { return reader.position() == 1 }, time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop")
	}
	assert.Len(t, store.saved, 1)
}
