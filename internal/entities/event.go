package entities

import "time"

// RealTimeEvent is an auditable record of a state transition. Rows double as a
// durable outbox: the relay worker publishes unprocessed rows to the broker and
// flips Processed. Rows expire 30 days after creation (audit trail, not a
// ledger).
type RealTimeEvent struct {
	ID         int64
	Type       EventType
	EntityID   string
	EntityType EntityType
	UserID     *string
	Payload    []byte
	Processed  bool
	CreatedAt  time.Time
}

type EventType string

const (
	EventOrderStatusChanged EventType = "order_status_changed"
	EventLocationUpdate     EventType = "location_update"
)

func (t EventType) String() string {
	return string(t)
}

type EntityType string

const (
	EntityOrder    EntityType = "order"
	EntityDelivery EntityType = "delivery"
	EntityUser     EntityType = "user"
)

func (t EntityType) String() string {
	return string(t)
}

// EventRetentionPeriod is how long event rows are kept before the cleanup task
// purges them.
const EventRetentionPeriod = 30 * 24 * time.Hour
