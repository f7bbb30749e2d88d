//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_status_put_test
package order_status_put

import (
	"context"

	"github.com/ifybugsy/odiya-store-sub002/internal/entities"
	"github.com/ifybugsy/odiya-store-sub002/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateStatus(ctx context.Context, claims entities.Claims, orderID string, newStatus entities.OrderStatusType) (*entities.Order, error)
}
