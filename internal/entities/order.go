package entities

import (
	"time"
)

type Order struct {
	ID                string
	BuyerID           string
	SellerID          string
	RiderID           *string
	Items             []OrderItem
	TotalAmount       float64
	Status            OrderStatusType
	ShippingAddress   string
	PaymentMethod     string
	PaymentStatus     string
	DeliveryStartedAt *time.Time
	DeliveredAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type OrderItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type OrderStatusType string

const (
	OrderPending          OrderStatusType = "pending"
	OrderConfirmed        OrderStatusType = "confirmed"
	OrderProcessing       OrderStatusType = "processing"
	OrderReadyForDelivery OrderStatusType = "ready_for_delivery"
	OrderInTransit        OrderStatusType = "in_transit"
	OrderDelivered        OrderStatusType = "delivered"
	OrderCancelled        OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// Valid reports whether the status is one of the enumerated order statuses.
// Membership is the only validation performed on transitions: any enumerated
// status may replace any other.
func (s OrderStatusType) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderProcessing, OrderReadyForDelivery,
		OrderInTransit, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

type OrderModify struct {
	ID                *string
	Status            *OrderStatusType
	DeliveryStartedAt *time.Time
	DeliveredAt       *time.Time
}

// OrderFilter narrows order listings. Zero-value fields are ignored.
type OrderFilter struct {
	BuyerID  *string
	SellerID *string
	RiderID  *string
	Status   *OrderStatusType
	Limit    int
	Offset   int
}
