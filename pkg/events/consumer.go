package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/rentx/internal/models"
)

const retryDelay = time.Second

type Store interface {
	Save(ctx context.Context, event models.RentalEvent) error
}

type Consumer struct {
	reader Reader
	store  Store
	logger *slog.Logger
}

func NewConsumer(reader Reader, store Store, logger *slog.Logger) *Consumer {
	return &Consumer{
		reader: reader,
		store:  store,
		logger: logger,
	}
}

// Consume reads one message and stores its event. When the store fails the
// reader is rewound to the message, so it is read again. Malformed messages
// are dropped.
func (c *Consumer) Consume(ctx context.Context) (err error) {
	if c.reader == nil {
		return ErrNoReader
	}

	msg, err := c.reader.ReadMessage(ctx)
	if err != nil {
		return err
	}

	c.logger.Debug("read message from kafka",
		slog.String("topic", msg.Topic),
		slog.Int("partition", msg.Partition),
		slog.Int64("offset", msg.Offset),
		slog.String("key", string(msg.Key)),
	)

	event, err := Decode(msg)
	if err != nil {
		c.logger.Warn("drop malformed message",
			slog.Int64("offset", msg.Offset),
			slog.String("error", err.Error()),
		)
		return nil
	}

	defer func() {
		if err != nil {
			if offsetErr := c.reader.SetOffset(msg.Offset); offsetErr != nil {
				err = multierror.Append(err, offsetErr)
			}
		}
	}()

	return c.store.Save(ctx, event)
}

// Run consumes until ctx is done.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		err := c.Consume(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if err == nil {
			continue
		}
		if errors.Is(err, ErrNoReader) {
			return err
		}

		c.logger.Error("failed to consume rental event", slog.String("error", err.Error()))

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(retryDelay):
		}
	}
}
