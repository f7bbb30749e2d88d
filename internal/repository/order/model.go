package order

import "time"

type OrderDB struct {
	ID                string
	BuyerID           string
	SellerID          string
	RiderID           *string
	Items             []byte
	TotalAmount       float64
	Status            string
	ShippingAddress   string
	PaymentMethod     string
	PaymentStatus     string
	DeliveryStartedAt *time.Time
	DeliveredAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
