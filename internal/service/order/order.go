package order

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ifybugsy/odiya-store-sub002/internal/broadcast"
	"github.com/ifybugsy/odiya-store-sub002/internal/entities"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type Order struct {
	repository      Repository
	notifications   NotificationService
	events          EventLog
	broadcaster     Broadcaster
	deliveryService DeliveryService
	txManager       TxManager
}

func New(
	repository Repository,
	notifications NotificationService,
	events EventLog,
	broadcaster Broadcaster,
	deliveryService DeliveryService,
	txManager TxManager,
) *Order {
	return &Order{
		repository:      repository,
		notifications:   notifications,
		events:          events,
		broadcaster:     broadcaster,
		deliveryService: deliveryService,
		txManager:       txManager,
	}
}

type statusChangedPayload struct {
	OrderID        string `json:"order_id"`
	PreviousStatus string `json:"previous_status"`
	NewStatus      string `json:"new_status"`
}

// UpdateStatus overwrites the order's status on behalf of its seller or an
// admin. Any enumerated status may replace any other; only membership in the
// status set is validated. The primary write commits first, then the side
// effects (buyer notification, event-log row, live broadcast, delivery sync)
// fire sequentially and non-transactionally: a failing side effect surfaces as
// an error even though the status change already persisted.
func (o *Order) UpdateStatus(ctx context.Context, claims entities.Claims, orderID string, newStatus entities.OrderStatusType) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !newStatus.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, newStatus)
	}

	current, err := o.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}

	if !claims.IsAdmin() && claims.UserID != current.SellerID {
		return nil, ErrForbidden
	}

	previousStatus := current.Status
	now := time.Now().UTC()

	orderModify := entities.OrderModify{
		ID:     &orderID,
		Status: &newStatus,
	}
	// The started-at guard is idempotent: a second in_transit update must not
	// move the original timestamp.
	if newStatus == entities.OrderInTransit && current.DeliveryStartedAt == nil {
		orderModify.DeliveryStartedAt = &now
	}
	if newStatus == entities.OrderDelivered {
		orderModify.DeliveredAt = &now
	}

	var updated *entities.Order
	err = o.txManager.Do(ctx, func(ctx context.Context) error {
		updated, err = o.repository.Update(ctx, orderModify)
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := o.fireStatusSideEffects(ctx, updated, previousStatus); err != nil {
		return nil, err
	}

	return updated, nil
}

// List returns the caller's slice of the order book: buyers see their
// purchases, sellers their sales, riders their assigned orders, admins
// everything.
func (o *Order) List(ctx context.Context, claims entities.Claims, filter entities.OrderFilter) ([]entities.Order, error) {
	switch claims.Role {
	case entities.RoleBuyer:
		filter.BuyerID = &claims.UserID
	case entities.RoleSeller:
		filter.SellerID = &claims.UserID
	case entities.RoleRider:
		filter.RiderID = &claims.UserID
	case entities.RoleAdmin:
		// unscoped
	default:
		return nil, ErrForbidden
	}

	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	orders, err := o.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (o *Order) fireStatusSideEffects(ctx context.Context, updated *entities.Order, previousStatus entities.OrderStatusType) error {
	notification := entities.Notification{
		UserID:  updated.BuyerID,
		Type:    entities.NotificationOrderStatus,
		Title:   fmt.Sprintf("Your order is now %s", updated.Status),
		Body:    fmt.Sprintf("Order %s changed from %s to %s.", updated.ID, previousStatus, updated.Status),
		OrderID: &updated.ID,
	}
	if _, err := o.notifications.Notify(ctx, notification); err != nil {
		return fmt.Errorf("notify buyer: %w", err)
	}

	payload, err := json.Marshal(statusChangedPayload{
		OrderID:        updated.ID,
		PreviousStatus: previousStatus.String(),
		NewStatus:      updated.Status.String(),
	})
	if err != nil {
		return fmt.Errorf("marshal status event payload: %w", err)
	}

	event := entities.RealTimeEvent{
		Type:       entities.EventOrderStatusChanged,
		EntityID:   updated.ID,
		EntityType: entities.EntityOrder,
		UserID:     &updated.BuyerID,
		Payload:    payload,
	}
	if err := o.events.Record(ctx, event); err != nil {
		return fmt.Errorf("record status event: %w", err)
	}

	o.broadcaster.Publish(updated.ID, broadcast.Frame{
		Type: broadcast.FrameOrderStatus,
		Data: broadcast.OrderStatusData{
			OrderID:        updated.ID,
			PreviousStatus: previousStatus.String(),
			Status:         updated.Status.String(),
			BuyerID:        updated.BuyerID,
		},
	})

	if updated.RiderID == nil {
		return nil
	}

	delivery, err := o.deliveryService.SyncOrderStatus(ctx, updated.ID, updated.Status)
	if err != nil {
		return fmt.Errorf("sync delivery status: %w", err)
	}
	// A rider reference without a delivery record yet is not an error for the
	// status flow itself.
	if delivery == nil {
		return nil
	}

	o.broadcaster.Publish(delivery.ID, broadcast.Frame{
		Type: broadcast.FrameDeliveryUpdate,
		Data: broadcast.DeliveryUpdateData{
			DeliveryID: delivery.ID,
			OrderID:    delivery.OrderID,
			Status:     delivery.Status.String(),
		},
	})

	return nil
}
