//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=badge_test
package badge

import (
	"context"

	"github.com/ifybugsy/odiya-store-sub002/internal/entities"
)

type Repository interface {
	GetStats(ctx context.Context, sellerID string) (*entities.SellerStats, error)
}
