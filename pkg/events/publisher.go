package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"

	"github.com/SlavaShagalov/rentx/internal/models"
)

type BreakerSettings struct {
	// ConsecutiveFailures opens the breaker.
	ConsecutiveFailures uint32
	// Timeout is how long the breaker stays open before a probe.
	Timeout time.Duration
}

type KafkaPublisher struct {
	writer  Writer
	breaker *gobreaker.CircuitBreaker[struct{}]
	logger  *slog.Logger
}

func NewKafkaPublisher(writer Writer, settings BreakerSettings, logger *slog.Logger) *KafkaPublisher {
	failures := settings.ConsecutiveFailures
	if failures == 0 {
		failures = 1
	}

	breaker := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:    "kafka-rental-events",
		Timeout: settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &KafkaPublisher{
		writer:  writer,
		breaker: breaker,
		logger:  logger,
	}
}

func (p *KafkaPublisher) HealthCheck(_ context.Context) error {
	if p.writer == nil {
		return ErrNoWriter
	}
	if p.breaker.State() == gobreaker.StateOpen {
		return errors.Wrap(gobreaker.ErrOpenState, "kafka publisher")
	}
	return nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, event models.RentalEvent) error {
	if p.writer == nil {
		return ErrNoWriter
	}

	msg, err := Encode(event)
	if err != nil {
		return err
	}

	p.logger.Debug("write message to kafka...",
		slog.String("key", string(msg.Key)),
		slog.String("kind", string(event.Kind)),
	)

	_, err = p.breaker.Execute(func() (struct{}, error) {
		err := p.writer.WriteMessages(ctx, msg)
		if errors.Is(err, kafka.UnknownTopicOrPartition) {
			time.Sleep(5 * time.Second) // Wait for auto creating topic
			err = p.writer.WriteMessages(ctx, msg)
		}
		return struct{}{}, err
	})

	return err
}

func (p *KafkaPublisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

// LogPublisher only logs events. Used when no brokers are configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) HealthCheck(context.Context) error {
	return nil
}

func (p *LogPublisher) Publish(_ context.Context, event models.RentalEvent) error {
	p.logger.Debug("rental event",
		slog.String("rental_id", event.RentalID.String()),
		slog.String("kind", string(event.Kind)),
	)
	return nil
}
