package event

import (
	"context"
	"fmt"
	"time"

	"github.com/ifybugsy/odiya-store-sub002/internal/entities"
)

const eventColumns = `id, event_type, entity_id, entity_type, user_id, payload, processed, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, e entities.RealTimeEvent) (*entities.RealTimeEvent, error) {
	query := `
		INSERT INTO realtime_events (event_type, entity_id, entity_type, user_id, payload)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + eventColumns

	var eventModel EventDB
	err := r.querier.QueryRow(
		ctx,
		query,
		e.Type.String(),
		e.EntityID,
		e.EntityType.String(),
		e.UserID,
		e.Payload,
	).Scan(
		&eventModel.ID,
		&eventModel.Type,
		&eventModel.EntityID,
		&eventModel.EntityType,
		&eventModel.UserID,
		&eventModel.Payload,
		&eventModel.Processed,
		&eventModel.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected event repository create error: %w", err)
	}

	return ToDomain(&eventModel), nil
}

// DeleteOlderThan purges expired rows. Postgres has no TTL index, so the
// cleanup task calls this periodically instead.
func (r *Repository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM realtime_events WHERE created_at < $1`

	result, err := r.querier.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("unexpected event repository delete error: %w", err)
	}

	return result.RowsAffected(), nil
}

// GetPending returns the oldest unprocessed rows for the relay, bounded by
// limit.
func (r *Repository) GetPending(ctx context.Context, limit int) ([]entities.RealTimeEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM realtime_events
		WHERE processed = FALSE
		ORDER BY id
		LIMIT $1`

	rows, err := r.querier.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected event repository getpending error: %w", err)
	}
	defer rows.Close()

	var events []entities.RealTimeEvent
	for rows.Next() {
		var eventModel EventDB
		err := rows.Scan(
			&eventModel.ID,
			&eventModel.Type,
			&eventModel.EntityID,
			&eventModel.EntityType,
			&eventModel.UserID,
			&eventModel.Payload,
			&eventModel.Processed,
			&eventModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected event repository getpending scan error: %w", err)
		}
		events = append(events, *ToDomain(&eventModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected event repository getpending rows error: %w", err)
	}

	return events, nil
}

func (r *Repository) MarkProcessed(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query := `UPDATE realtime_events SET processed = TRUE WHERE id = ANY($1)`

	_, err := r.querier.Exec(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("unexpected event repository markprocessed error: %w", err)
	}
	return nil
}
