//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"github.com/ifybugsy/odiya-store-sub002/internal/broadcast"
	"github.com/ifybugsy/odiya-store-sub002/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
}

type NotificationService interface {
	Notify(ctx context.Context, notification entities.Notification) (*entities.Notification, error)
}

type EventLog interface {
	Record(ctx context.Context, event entities.RealTimeEvent) error
}

type Broadcaster interface {
	Publish(entityID string, frame broadcast.Frame)
}

type DeliveryService interface {
	GetByOrderID(ctx context.Context, orderID string) (*entities.Delivery, error)
	SyncOrderStatus(ctx context.Context, orderID string, status entities.OrderStatusType) (*entities.Delivery, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
