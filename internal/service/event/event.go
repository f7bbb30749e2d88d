package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ifybugsy/odiya-store-sub002/internal/entities"
)

type Service struct {
	repository Repository
	producer   Producer
}

func New(repository Repository, producer Producer) *Service {
	return &Service{
		repository: repository,
		producer:   producer,
	}
}

// Record appends an unprocessed event row. The row serves both as the audit
// trail and as the durable outbox intent the relay drains later.
func (s *Service) Record(ctx context.Context, event entities.RealTimeEvent) error {
	if _, err := s.repository.Create(ctx, event); err != nil {
		return fmt.Errorf("record event: %w", err)
	}
	return nil
}

// CleanupExpired purges event rows past the 30-day retention window. Losing
// rows after the window is acceptable: this is an audit trail, not a ledger.
func (s *Service) CleanupExpired(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().Add(-entities.EventRetentionPeriod)

	rowsAffected, err := s.repository.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("cleanup timed out: %w", err)
		}
		return 0, fmt.Errorf("cleanup: %w", err)
	}

	return rowsAffected, nil
}

// envelope is the broker representation of one event row.
type envelope struct {
	ID         int64           `json:"id"`
	Type       string          `json:"type"`
	EntityID   string          `json:"entity_id"`
	EntityType string          `json:"entity_type"`
	UserID     *string         `json:"user_id,omitempty"`
	Payload    json.RawMessage `json:"payload"`
	CreatedAt  time.Time       `json:"created_at"`
}

// RelayPending drains a bounded batch of unprocessed rows to the broker and
// marks them processed. Publishing is at-least-once: a crash between the push
// and the mark reproduces the batch on the next run.
func (s *Service) RelayPending(ctx context.Context, limit int) (int, error) {
	events, err := s.repository.GetPending(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("fetch pending events: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	messages := make([][]byte, 0, len(events))
	ids := make([]int64, 0, len(events))
	for _, e := range events {
		message, err := json.Marshal(envelope{
			ID:         e.ID,
			Type:       e.Type.String(),
			EntityID:   e.EntityID,
			EntityType: e.EntityType.String(),
			UserID:     e.UserID,
			Payload:    e.Payload,
			CreatedAt:  e.CreatedAt,
		})
		if err != nil {
			return 0, fmt.Errorf("marshal event %d: %w", e.ID, err)
		}
		messages = append(messages, message)
		ids = append(ids, e.ID)
	}

	if err := s.producer.Push(messages); err != nil {
		return 0, fmt.Errorf("push events to broker: %w", err)
	}

	if err := s.repository.MarkProcessed(ctx, ids); err != nil {
		return 0, fmt.Errorf("mark events processed: %w", err)
	}

	return len(events), nil
}
