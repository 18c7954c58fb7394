package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/GlebRadaev/poolkeeper/internal/domain"
)

const (
	writeTimeout   = 10 * time.Second
	queuePerWorker = 64
)

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes ledger events keyed by sender. Writes happen on a
// worker pool; when the queue is full the event is dropped and Publish
// returns ErrPoolFull instead of waiting for the broker.
type KafkaPublisher struct {
	writer Writer
	pool   WorkerPoolI
}

func NewKafkaPublisher(brokers []string, topic string, workers int) *KafkaPublisher {
	return newKafkaPublisher(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		BatchTimeout: 10 * time.Millisecond,
	}, NewWorkerPool(workers, workers*queuePerWorker))
}

func newKafkaPublisher(writer Writer, pool WorkerPoolI) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, pool: pool}
}

func (p *KafkaPublisher) Publish(_ context.Context, event domain.LedgerEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event %s: %w", event.ID, err)
	}
	msg := kafka.Message{
		Key:   []byte(event.Sender),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "action", Value: []byte(event.Action)},
		},
	}

	err = p.pool.TryAddTask(func() error {
		wctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		if err := p.writer.WriteMessages(wctx, msg); err != nil {
			return fmt.Errorf("failed to write event %s: %w", event.ID, err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("event %s dropped: %w", event.ID, err)
	}
	return nil
}

// Close drains queued events before closing the writer.
func (p *KafkaPublisher) Close() error {
	if err := p.pool.Close(); err != nil {
		zap.L().Error("failed to drain event queue", zap.Error(err))
	}
	return p.writer.Close()
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(_ context.Context, event domain.LedgerEvent) error {
	zap.L().Debug("ledger event", zap.String("id", event.ID), zap.String("action", event.Action), zap.String("sender", event.Sender))
	return nil
}

func (NoopPublisher) Close() error { return nil }
