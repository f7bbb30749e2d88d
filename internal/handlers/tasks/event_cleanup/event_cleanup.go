package event_cleanup

import (
	"context"
	"time"

	"github.com/ifybugsy/odiya-store-sub002/pkg/logger"
)

type Service interface {
	CleanupExpired(ctx context.Context) (int64, error)
}

// EventCleanup periodically deletes real-time event rows past their
// retention window.
type EventCleanup struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewEventCleanup(log logger.Logger, service Service, interval time.Duration) *EventCleanup {
	return &EventCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (e *EventCleanup) TTL() time.Duration {
	return e.interval
}

func (e *EventCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, e.interval)
	defer cancel()

	rowsAffected, err := e.service.CleanupExpired(ctxWithTimeout)

	if rowsAffected > 0 {
		e.log.With(
			logger.NewField("expired_events", rowsAffected),
		).Info("event cleanup")
	}

	return err
}

func (e *EventCleanup) Info() string {
	return "event cleanup"
}
