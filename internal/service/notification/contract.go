//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"github.com/ifybugsy/odiya-store-sub002/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, notification entities.Notification) (*entities.Notification, error)
	List(ctx context.Context, filter entities.NotificationFilter) ([]entities.Notification, error)
	MarkRead(ctx context.Context, userID string, id int64) (*entities.Notification, error)
}
