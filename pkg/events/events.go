// Package events moves rental events through Kafka.
package events

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"

	"github.com/SlavaShagalov/rentx/internal/models"
)

type BacklogError string

func (e BacklogError) Error() string {
	return string(e)
}

const (
	ErrNoWriter BacklogError = "events has no writer"
	ErrNoReader BacklogError = "events has no reader"
)

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Reader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	SetOffset(offset int64) error
	Close() error
}

// Encode builds a message keyed by rental id, so events of one rental stay
// ordered within a partition.
func Encode(event models.RentalEvent) (kafka.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, errors.Wrap(err, "marshal rental event")
	}

	return kafka.Message{
		Key:   []byte(event.RentalID.String()),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(event.Kind)},
		},
	}, nil
}

func Decode(msg kafka.Message) (models.RentalEvent, error) {
	var event models.RentalEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return models.RentalEvent{}, errors.Wrap(err, "unmarshal rental event")
	}
	return event, nil
}
