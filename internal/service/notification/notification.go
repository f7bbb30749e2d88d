package notification

import (
	"context"
	"fmt"

	"github.com/ifybugsy/odiya-store-sub002/internal/entities"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type Notification struct {
	repository Repository
}

func New(repository Repository) *Notification {
	return &Notification{
		repository: repository,
	}
}

// Notify inserts a durable message for the recipient. Callers treat it as a
// best-effort side effect; there is no delivery guarantee beyond the insert.
func (n *Notification) Notify(ctx context.Context, notification entities.Notification) (*entities.Notification, error) {
	created, err := n.repository.Create(ctx, notification)
	if err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return created, nil
}

// List returns the recipient's notifications, newest first.
func (n *Notification) List(ctx context.Context, userID string, filter entities.NotificationFilter) ([]entities.Notification, error) {
	filter.UserID = userID

	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	notifications, err := n.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead flips the recipient's own notification to read. A notification
// belonging to someone else reports not-found rather than forbidden, so ids
// of other users' notifications stay unguessable.
func (n *Notification) MarkRead(ctx context.Context, userID string, id int64) (*entities.Notification, error) {
	updated, err := n.repository.MarkRead(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return updated, nil
}
