package notification

import "github.com/ifybugsy/odiya-store-sub002/internal/entities"

func ToDomain(n *NotificationDB) *entities.Notification {
	if n == nil {
		return nil
	}
	return &entities.Notification{
		ID:         n.ID,
		UserID:     n.UserID,
		Type:       entities.NotificationType(n.Type),
		Title:      n.Title,
		Body:       n.Body,
		OrderID:    n.OrderID,
		DeliveryID: n.DeliveryID,
		Read:       n.Read,
		ReadAt:     n.ReadAt,
		CreatedAt:  n.CreatedAt,
	}
}
