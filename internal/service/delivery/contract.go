//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"

	"github.com/ifybugsy/odiya-store-sub002/internal/broadcast"
	"github.com/ifybugsy/odiya-store-sub002/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*entities.Delivery, error)
	GetByOrderID(ctx context.Context, orderID string) (*entities.Delivery, error)
	UpdateLocation(ctx context.Context, id string, location entities.Location) (*entities.Delivery, error)
	UpdateStatus(ctx context.Context, id string, status entities.DeliveryStatusType) (*entities.Delivery, error)
}

type OrderGetter interface {
	GetByID(ctx context.Context, id string) (*entities.Order, error)
}

type EventLog interface {
	Record(ctx context.Context, event entities.RealTimeEvent) error
}

type Broadcaster interface {
	Publish(entityID string, frame broadcast.Frame)
}
