package entities

import "time"

type Notification struct {
	ID         int64
	UserID     string
	Type       NotificationType
	Title      string
	Body       string
	OrderID    *string
	DeliveryID *string
	Read       bool
	ReadAt     *time.Time
	CreatedAt  time.Time
}

type NotificationType string

// NotificationOrderStatus tags notifications produced by order status
// transitions. Delivery location updates do not notify anyone.
const NotificationOrderStatus NotificationType = "order_status"

func (t NotificationType) String() string {
	return string(t)
}

// NotificationFilter narrows notification listings for one recipient.
type NotificationFilter struct {
	UserID string
	Unread *bool
	Limit  int
	Offset int
}
