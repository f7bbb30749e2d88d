//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notifications_get_test
package notifications_get

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
	List(ctx context.Context, userID string, filter entities.NotificationFilter) ([]entities.Notification, error)
}
