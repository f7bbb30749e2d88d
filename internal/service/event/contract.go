//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=event_test
package event

import (
	"context"
	"time"

	"github.com/ifybugsy/odiya-store-sub002/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, event entities.RealTimeEvent) (*entities.RealTimeEvent, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	GetPending(ctx context.Context, limit int) ([]entities.RealTimeEvent, error)
	MarkProcessed(ctx context.Context, ids []int64) error
}

type Producer interface {
	Push(messages [][]byte) error
}
