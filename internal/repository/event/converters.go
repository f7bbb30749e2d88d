package event

import "github.com/ifybugsy/odiya-store-sub002/internal/entities"

func ToDomain(e *EventDB) *entities.RealTimeEvent {
	if e == nil {
		return nil
	}
	return &entities.RealTimeEvent{
		ID:         e.ID,
		Type:       entities.EventType(e.Type),
		EntityID:   e.EntityID,
		EntityType: entities.EntityType(e.EntityType),
		UserID:     e.UserID,
		Payload:    e.Payload,
		Processed:  e.Processed,
		CreatedAt:  e.CreatedAt,
	}
}
