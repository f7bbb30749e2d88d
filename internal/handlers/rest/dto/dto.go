// Package dto holds the wire representations shared by the REST handlers.
package dto

import (
	"time"

	"github.com/ifybugsy/odiya-store-sub002/internal/entities"
)

type OrderItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type Order struct {
	ID                string      `json:"id"`
	BuyerID           string      `json:"buyer_id"`
	SellerID          string      `json:"seller_id"`
	RiderID           *string     `json:"rider_id,omitempty"`
	Items             []OrderItem `json:"items"`
	TotalAmount       float64     `json:"total_amount"`
	Status            string      `json:"status"`
	ShippingAddress   string      `json:"shipping_address"`
	PaymentMethod     string      `json:"payment_method"`
	PaymentStatus     string      `json:"payment_status"`
	DeliveryStartedAt *time.Time  `json:"delivery_started_at,omitempty"`
	DeliveredAt       *time.Time  `json:"delivered_at,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

func FromOrder(o *entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return Order{
		ID:                o.ID,
		BuyerID:           o.BuyerID,
		SellerID:          o.SellerID,
		RiderID:           o.RiderID,
		Items:             items,
		TotalAmount:       o.TotalAmount,
		Status:            o.Status.String(),
		ShippingAddress:   o.ShippingAddress,
		PaymentMethod:     o.PaymentMethod,
		PaymentStatus:     o.PaymentStatus,
		DeliveryStartedAt: o.DeliveryStartedAt,
		DeliveredAt:       o.DeliveredAt,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

type Location struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	RecordedAt time.Time `json:"recorded_at"`
}

type Delivery struct {
	ID              string    `json:"id"`
	OrderID         string    `json:"order_id"`
	RiderID         string    `json:"rider_id"`
	PickupAddress   string    `json:"pickup_address"`
	DropoffAddress  string    `json:"dropoff_address"`
	Status          string    `json:"status"`
	CurrentLocation *Location `json:"current_location,omitempty"`
	Rating          *int      `json:"rating,omitempty"`
	Feedback        *string   `json:"feedback,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromDelivery(d *entities.Delivery) Delivery {
	deliveryDTO := Delivery{
		ID:             d.ID,
		OrderID:        d.OrderID,
		RiderID:        d.RiderID,
		PickupAddress:  d.PickupAddress,
		DropoffAddress: d.DropoffAddress,
		Status:         d.Status.String(),
		Rating:         d.Rating,
		Feedback:       d.Feedback,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}

	if d.CurrentLocation != nil {
		deliveryDTO.CurrentLocation = &Location{
			Latitude:   d.CurrentLocation.Latitude,
			Longitude:  d.CurrentLocation.Longitude,
			RecordedAt: d.CurrentLocation.RecordedAt,
		}
	}

	return deliveryDTO
}

type Notification struct {
	ID         int64      `json:"id"`
	UserID     string     `json:"user_id"`
	Type       string     `json:"type"`
	Title      string     `json:"title"`
	Body       string     `json:"body"`
	OrderID    *string    `json:"order_id,omitempty"`
	DeliveryID *string    `json:"delivery_id,omitempty"`
	Read       bool       `json:"read"`
	ReadAt     *time.Time `json:"read_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func FromNotification(n *entities.Notification) Notification {
	return Notification{
		ID:         n.ID,
		UserID:     n.UserID,
		Type:       n.Type.String(),
		Title:      n.Title,
		Body:       n.Body,
		OrderID:    n.OrderID,
		DeliveryID: n.DeliveryID,
		Read:       n.Read,
		ReadAt:     n.ReadAt,
		CreatedAt:  n.CreatedAt,
	}
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
