package delivery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ifybugsy/odiya-store-sub002/internal/broadcast"
	"github.com/ifybugsy/odiya-store-sub002/internal/entities"
	orderservice "github.com/ifybugsy/odiya-store-sub002/internal/service/order"
)

type Delivery struct {
	repository  Repository
	orders      OrderGetter
	events      EventLog
	broadcaster Broadcaster
}

func New(
	repository Repository,
	orders OrderGetter,
	events EventLog,
	broadcaster Broadcaster,
) *Delivery {
	return &Delivery{
		repository:  repository,
		orders:      orders,
		events:      events,
		broadcaster: broadcaster,
	}
}

type locationUpdatePayload struct {
	DeliveryID string  `json:"delivery_id"`
	OrderID    string  `json:"order_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

// UpdateLocation overwrites the delivery's current-location snapshot with the
// rider-reported coordinates. Only the assigned rider may report. There is no
// geofencing, distance or speed sanity checking, and no per-delivery rate
// limiting.
func (d *Delivery) UpdateLocation(ctx context.Context, claims entities.Claims, deliveryID string, latitude, longitude float64) (*entities.Delivery, error) {
	if !isValidDeliveryID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}
	if !isValidCoordinates(latitude, longitude) {
		return nil, ErrInvalidCoordinates
	}

	current, err := d.repository.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("load delivery: %w", err)
	}

	if claims.UserID != current.RiderID {
		return nil, ErrNotAssignedRider
	}

	location := entities.Location{
		Latitude:   latitude,
		Longitude:  longitude,
		RecordedAt: time.Now().UTC(),
	}

	updated, err := d.repository.UpdateLocation(ctx, deliveryID, location)
	if err != nil {
		return nil, fmt.Errorf("update delivery location: %w", err)
	}

	// Side effects fire only while the parent order still exists.
	_, err = d.orders.GetByID(ctx, updated.OrderID)
	if err != nil {
		if errors.Is(err, orderservice.ErrOrderNotFound) {
			return updated, nil
		}
		return nil, fmt.Errorf("load parent order: %w", err)
	}

	payload, err := json.Marshal(locationUpdatePayload{
		DeliveryID: updated.ID,
		OrderID:    updated.OrderID,
		Latitude:   latitude,
		Longitude:  longitude,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal location event payload: %w", err)
	}

	event := entities.RealTimeEvent{
		Type:       entities.EventLocationUpdate,
		EntityID:   updated.ID,
		EntityType: entities.EntityDelivery,
		UserID:     &updated.RiderID,
		Payload:    payload,
	}
	if err := d.events.Record(ctx, event); err != nil {
		return nil, fmt.Errorf("record location event: %w", err)
	}

	d.broadcaster.Publish(updated.ID, broadcast.Frame{
		Type: broadcast.FrameDeliveryUpdate,
		Data: broadcast.DeliveryUpdateData{
			DeliveryID: updated.ID,
			OrderID:    updated.OrderID,
			Status:     updated.Status.String(),
			Latitude:   &latitude,
			Longitude:  &longitude,
		},
	})

	return updated, nil
}

func (d *Delivery) GetByOrderID(ctx context.Context, orderID string) (*entities.Delivery, error) {
	delivery, err := d.repository.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return delivery, nil
}

// SyncOrderStatus mirrors an order status change onto the linked delivery
// record. Order statuses without a delivery counterpart leave the record
// untouched and return it as-is. Orders that never got a delivery record
// return (nil, nil): that is not an error for the order flow.
func (d *Delivery) SyncOrderStatus(ctx context.Context, orderID string, status entities.OrderStatusType) (*entities.Delivery, error) {
	delivery, err := d.repository.GetByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, ErrDeliveryNotFound) {
			return nil, nil
		}
		return nil, err
	}

	deliveryStatus, ok := deliveryStatusFor(status)
	if !ok || delivery.Status == deliveryStatus {
		return delivery, nil
	}

	updated, err := d.repository.UpdateStatus(ctx, delivery.ID, deliveryStatus)
	if err != nil {
		return nil, fmt.Errorf("sync delivery status: %w", err)
	}
	return updated, nil
}

func deliveryStatusFor(status entities.OrderStatusType) (entities.DeliveryStatusType, bool) {
	switch status {
	case entities.OrderInTransit:
		return entities.DeliveryInTransit, true
	case entities.OrderDelivered:
		return entities.DeliveryDelivered, true
	case entities.OrderCancelled:
		return entities.DeliveryFailed, true
	default:
		return "", false
	}
}
