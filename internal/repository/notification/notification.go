package notification

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ifybugsy/odiya-store-sub002/internal/entities"
	notificationservice "github.com/ifybugsy/odiya-store-sub002/internal/service/notification"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const notificationColumns = `id, user_id, type, title, body, order_id, delivery_id,
		read, read_at, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, n entities.Notification) (*entities.Notification, error) {
	query := `
		INSERT INTO notifications (user_id, type, title, body, order_id, delivery_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + notificationColumns

	var notificationModel NotificationDB
	err := r.querier.QueryRow(
		ctx,
		query,
		n.UserID,
		n.Type.String(),
		n.Title,
		n.Body,
		n.OrderID,
		n.DeliveryID,
	).Scan(
		&notificationModel.ID,
		&notificationModel.UserID,
		&notificationModel.Type,
		&notificationModel.Title,
		&notificationModel.Body,
		&notificationModel.OrderID,
		&notificationModel.DeliveryID,
		&notificationModel.Read,
		&notificationModel.ReadAt,
		&notificationModel.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	return ToDomain(&notificationModel), nil
}

func (r *Repository) List(ctx context.Context, filter entities.NotificationFilter) ([]entities.Notification, error) {
	builder := qb.
		Select(notificationColumns).
		From("notifications").
		Where(sq.Eq{"user_id": filter.UserID})

	if filter.Unread != nil {
		builder = builder.Where(sq.Eq{"read": !*filter.Unread})
	}

	builder = builder.OrderBy("created_at DESC")

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}
	defer rows.Close()

	var notifications []entities.Notification
	for rows.Next() {
		var notificationModel NotificationDB
		err := rows.Scan(
			&notificationModel.ID,
			&notificationModel.UserID,
			&notificationModel.Type,
			&notificationModel.Title,
			&notificationModel.Body,
			&notificationModel.OrderID,
			&notificationModel.DeliveryID,
			&notificationModel.Read,
			&notificationModel.ReadAt,
			&notificationModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected notification repository list scan error: %w", err)
		}
		notifications = append(notifications, *ToDomain(&notificationModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected notification repository list rows error: %w", err)
	}

	return notifications, nil
}

// MarkRead stamps read_at only on the first transition to read; a repeated
// call leaves the original timestamp in place.
func (r *Repository) MarkRead(ctx context.Context, userID string, id int64) (*entities.Notification, error) {
	query := `
		UPDATE notifications
		SET read = TRUE, read_at = COALESCE(read_at, NOW())
		WHERE id = $1 AND user_id = $2
		RETURNING ` + notificationColumns

	var notificationModel NotificationDB
	err := r.querier.QueryRow(ctx, query, id, userID).Scan(
		&notificationModel.ID,
		&notificationModel.UserID,
		&notificationModel.Type,
		&notificationModel.Title,
		&notificationModel.Body,
		&notificationModel.OrderID,
		&notificationModel.DeliveryID,
		&notificationModel.Read,
		&notificationModel.ReadAt,
		&notificationModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notificationservice.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("unexpected notification repository markread error: %w", err)
	}

	return ToDomain(&notificationModel), nil
}
