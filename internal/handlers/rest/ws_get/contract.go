//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ws_get_test
package ws_get

import (
	"github.com/ifybugsy/odiya-store-sub002/internal/broadcast"
	"github.com/ifybugsy/odiya-store-sub002/internal/entities"
	"github.com/ifybugsy/odiya-store-sub002/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type TokenVerifier interface {
	Parse(tokenString string) (entities.Claims, error)
}

type Registry interface {
	Subscribe(entityID string, sub broadcast.Subscriber)
	Unsubscribe(entityID string, sub broadcast.Subscriber)
	UnsubscribeAll(sub broadcast.Subscriber)
}
