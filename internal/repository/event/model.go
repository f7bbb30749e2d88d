package event

import "time"

type EventDB struct {
	ID         int64
	Type       string
	EntityID   string
	EntityType string
	UserID     *string
	Payload    []byte
	Processed  bool
	CreatedAt  time.Time
}
