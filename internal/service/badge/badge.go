package badge

import (
	"context"
	"fmt"
	"time"

	"github.com/ifybugsy/odiya-store-sub002/internal/entities"
)

// Tier thresholds, evaluated high to low; the highest qualifying tier wins.
const (
	eliteItemsListed  = 100
	eliteItemsSold    = 250
	eliteContactCount = 500
	eliteRating       = 4.8
	eliteRatingCount  = 100
	eliteAccountAge   = 730 * 24 * time.Hour

	topRatedItemsListed = 50
	topRatedItemsSold   = 100
	topRatedRating      = 4.5
	topRatedRatingCount = 50
	topRatedAccountAge  = 365 * 24 * time.Hour

	trustedItemsListed = 10
	trustedItemsSold   = 25
	trustedRating      = 4.0
	trustedRatingCount = 10
	trustedAccountAge  = 90 * 24 * time.Hour

	risingItemsSold    = 5
	risingItemsListed  = 5
	risingContactCount = 20
	risingAccountAge   = 14 * 24 * time.Hour
)

type SellerBadge struct {
	SellerID string
	Tier     entities.BadgeTier
	Stats    entities.SellerStats
}

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

func (s *Service) GetSellerBadge(ctx context.Context, sellerID string) (*SellerBadge, error) {
	stats, err := s.repository.GetStats(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("load seller stats: %w", err)
	}

	return &SellerBadge{
		SellerID: sellerID,
		Tier:     Classify(*stats, time.Now().UTC()),
		Stats:    *stats,
	}, nil
}

// Classify applies the fixed threshold table to the seller's counters.
// Deterministic and side-effect free.
func Classify(stats entities.SellerStats, now time.Time) entities.BadgeTier {
	age := stats.AccountAge(now)

	if stats.ItemsListed >= eliteItemsListed &&
		stats.ItemsSold >= eliteItemsSold &&
		stats.ContactCount >= eliteContactCount &&
		stats.Rating >= eliteRating &&
		stats.RatingCount >= eliteRatingCount &&
		age >= eliteAccountAge {
		return entities.BadgeElite
	}

	if stats.ItemsListed >= topRatedItemsListed &&
		stats.ItemsSold >= topRatedItemsSold &&
		stats.Rating >= topRatedRating &&
		stats.RatingCount >= topRatedRatingCount &&
		age >= topRatedAccountAge {
		return entities.BadgeTopRated
	}

	if stats.ItemsListed >= trustedItemsListed &&
		stats.ItemsSold >= trustedItemsSold &&
		stats.Rating >= trustedRating &&
		stats.RatingCount >= trustedRatingCount &&
		age >= trustedAccountAge {
		return entities.BadgeTrusted
	}

	if age >= risingAccountAge &&
		(stats.ItemsSold >= risingItemsSold ||
			(stats.ItemsListed >= risingItemsListed && stats.ContactCount >= risingContactCount)) {
		return entities.BadgeRising
	}

	return entities.BadgeNone
}
