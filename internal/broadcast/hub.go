package broadcast

import (
	"encoding/json"
	"sync"

	"github.com/ifybugsy/odiya-store-sub002/pkg/logger"
)

// Subscriber receives marshalled frames. Send must not block: implementations
// report false when the frame cannot be accepted, and the hub evicts them.
type Subscriber interface {
	Send(frame []byte) bool
	Close()
}

type hubLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Hub is the process-wide subscription registry: entity id (order or delivery)
// to the set of currently connected subscribers. It is owned by one long-lived
// instance, holds no persistent state and is lost on restart; clients
// resubscribe after reconnecting. Delivery is at-most-once: with no subscriber
// the frame is dropped.
type Hub struct {
	log hubLogger

	mu          sync.RWMutex
	subscribers map[string]map[Subscriber]struct{}
}

func NewHub(log hubLogger) *Hub {
	return &Hub{
		log:         log.With(),
		subscribers: make(map[string]map[Subscriber]struct{}),
	}
}

func (h *Hub) Subscribe(entityID string, sub Subscriber) {
	if entityID == "" || sub == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.subscribers[entityID]
	if !ok {
		set = make(map[Subscriber]struct{})
		h.subscribers[entityID] = set
	}
	set[sub] = struct{}{}

	SubscriptionsActive.Inc()
}

func (h *Hub) Unsubscribe(entityID string, sub Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeLocked(entityID, sub)
}

// UnsubscribeAll detaches the subscriber from every entity it follows. Called
// on connection teardown.
func (h *Hub) UnsubscribeAll(sub Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for entityID, set := range h.subscribers {
		if _, ok := set[sub]; ok {
			h.removeLocked(entityID, sub)
		}
	}
}

// Publish pushes the frame to every subscriber of the entity id. Subscribers
// that cannot keep up are evicted and closed rather than blocking the caller.
func (h *Hub) Publish(entityID string, frame Frame) {
	payload, err := json.Marshal(frame)
	if err != nil {
		h.log.Error("marshal broadcast frame",
			logger.NewField("entity", entityID),
			logger.NewField("error", err),
		)
		return
	}

	h.mu.RLock()
	set := h.subscribers[entityID]
	targets := make([]Subscriber, 0, len(set))
	for sub := range set {
		targets = append(targets, sub)
	}
	h.mu.RUnlock()

	if len(targets) == 0 {
		FramesDroppedTotal.WithLabelValues(frame.Type).Inc()
		return
	}

	delivered := 0
	for _, sub := range targets {
		if !sub.Send(payload) {
			h.log.Warn("evicting slow subscriber",
				logger.NewField("entity", entityID),
			)
			h.mu.Lock()
			h.removeLocked(entityID, sub)
			h.mu.Unlock()
			sub.Close()
			continue
		}
		delivered++
	}

	if delivered == 0 {
		FramesDroppedTotal.WithLabelValues(frame.Type).Inc()
		return
	}

	FramesPublishedTotal.WithLabelValues(frame.Type).Inc()
}

func (h *Hub) removeLocked(entityID string, sub Subscriber) {
	set, ok := h.subscribers[entityID]
	if !ok {
		return
	}
	if _, ok := set[sub]; !ok {
		return
	}

	delete(set, sub)
	if len(set) == 0 {
		delete(h.subscribers, entityID)
	}

	SubscriptionsActive.Dec()
}
