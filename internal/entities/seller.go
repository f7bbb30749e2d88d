package entities

import "time"

// SellerStats are the aggregated counters the badge classifier runs on.
type SellerStats struct {
	SellerID     string
	ItemsListed  int64
	ItemsSold    int64
	ContactCount int64
	Rating       float64
	RatingCount  int64
	MemberSince  time.Time
}

// AccountAge is the seller's age on the platform at the given instant.
func (s SellerStats) AccountAge(now time.Time) time.Duration {
	return now.Sub(s.MemberSince)
}

type BadgeTier string

const (
	BadgeNone     BadgeTier = "none"
	BadgeRising   BadgeTier = "rising"
	BadgeTrusted  BadgeTier = "trusted"
	BadgeTopRated BadgeTier = "top_rated"
	BadgeElite    BadgeTier = "elite"
)

func (b BadgeTier) String() string {
	return string(b)
}
