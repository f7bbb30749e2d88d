package order

import (
	"encoding/json"
	"fmt"

	"github.com/ifybugsy/odiya-store-sub002/internal/entities"
)

func ToDomain(o *OrderDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	var items []entities.OrderItem
	if len(o.Items) > 0 {
		if err := json.Unmarshal(o.Items, &items); err != nil {
			return nil, fmt.Errorf("decode order items: %w", err)
		}
	}

	return &entities.Order{
		ID:                o.ID,
		BuyerID:           o.BuyerID,
		SellerID:          o.SellerID,
		RiderID:           o.RiderID,
		Items:             items,
		TotalAmount:       o.TotalAmount,
		Status:            entities.OrderStatusType(o.Status),
		ShippingAddress:   o.ShippingAddress,
		PaymentMethod:     o.PaymentMethod,
		PaymentStatus:     o.PaymentStatus,
		DeliveryStartedAt: o.DeliveryStartedAt,
		DeliveredAt:       o.DeliveredAt,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}, nil
}
