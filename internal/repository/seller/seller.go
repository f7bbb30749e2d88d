package seller

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ifybugsy/odiya-store-sub002/internal/entities"
	badgeservice "github.com/ifybugsy/odiya-store-sub002/internal/service/badge"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetStats aggregates the counters the badge classifier runs on. Listing and
// contact counters live on the seller profile row; sold items are counted from
// delivered orders.
func (r *Repository) GetStats(ctx context.Context, sellerID string) (*entities.SellerStats, error) {
	query := `
		SELECT
			s.id,
			s.items_listed,
			COUNT(o.id) FILTER (WHERE o.status = 'delivered'),
			s.contact_count,
			s.rating,
			s.rating_count,
			s.created_at
		FROM sellers s
		LEFT JOIN orders o ON o.seller_id = s.id
		WHERE s.id = $1
		GROUP BY s.id`

	var stats entities.SellerStats
	err := r.querier.QueryRow(ctx, query, sellerID).Scan(
		&stats.SellerID,
		&stats.ItemsListed,
		&stats.ItemsSold,
		&stats.ContactCount,
		&stats.Rating,
		&stats.RatingCount,
		&stats.MemberSince,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, badgeservice.ErrSellerNotFound
		}
		return nil, fmt.Errorf("unexpected seller repository getstats error: %w", err)
	}

	return &stats, nil
}
