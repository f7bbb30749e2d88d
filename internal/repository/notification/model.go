package notification

import "time"

type NotificationDB struct {
	ID         int64
	UserID     string
	Type       string
	Title      string
	Body       string
	OrderID    *string
	DeliveryID *string
	Read       bool
	ReadAt     *time.Time
	CreatedAt  time.Time
}
