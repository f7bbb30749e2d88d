//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=seller_badge_get_test
package seller_badge_get

import (
	"context"

	"github.com/ifybugsy/odiya-store-sub002/internal/service/badge"
	"github.com/ifybugsy/odiya-store-sub002/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetSellerBadge(ctx context.Context, sellerID string) (*badge.SellerBadge, error)
}
