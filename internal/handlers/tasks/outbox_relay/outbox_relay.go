package outbox_relay

import (
	"context"
	"time"

	"github.com/ifybugsy/odiya-store-sub002/pkg/logger"
)

type Service interface {
	RelayPending(ctx context.Context, limit int) (int, error)
}

// OutboxRelay drains unprocessed real-time events to the broker in bounded
// batches. Events are marked processed only after a successful publish, so
// delivery toward the broker is at-least-once.
type OutboxRelay struct {
	log       logger.Logger
	service   Service
	interval  time.Duration
	batchSize int
}

func NewOutboxRelay(log logger.Logger, service Service, interval time.Duration, batchSize int) *OutboxRelay {
	return &OutboxRelay{
		log:       log,
		service:   service,
		interval:  interval,
		batchSize: batchSize,
	}
}

func (o *OutboxRelay) TTL() time.Duration {
	return o.interval
}

func (o *OutboxRelay) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	relayed, err := o.service.RelayPending(ctxWithTimeout, o.batchSize)

	if relayed > 0 {
		o.log.With(
			logger.NewField("relayed_events", relayed),
		).Info("outbox relay")
	}

	return err
}

func (o *OutboxRelay) Info() string {
	return "outbox relay"
}
