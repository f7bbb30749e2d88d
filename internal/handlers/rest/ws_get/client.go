package ws_get

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ifybugsy/odiya-store-sub002/pkg/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 32
)

// Client is one upgraded websocket connection. Frames published by the hub
// land in the buffered send channel; a full buffer marks the client slow and
// the hub drops it.
type Client struct {
	log      handlerLogger
	conn     *websocket.Conn
	registry Registry

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func newClient(log handlerLogger, conn *websocket.Conn, registry Registry) *Client {
	return &Client{
		log:      log,
		conn:     conn,
		registry: registry,
		send:     make(chan []byte, sendBufferSize),
		done:     make(chan struct{}),
	}
}

func (c *Client) Send(frame []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- frame:
		return true
	case <-c.done:
		return false
	default:
		return false
	}
}

func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

type clientMessage struct {
	Type       string `json:"type"`
	OrderID    string `json:"orderId"`
	DeliveryID string `json:"deliveryId"`
}

// readPump consumes subscribe/unsubscribe messages until the connection
// breaks, then detaches the client from the registry.
func (c *Client) readPump() {
	defer func() {
		c.registry.UnsubscribeAll(c)
		c.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.log.Warn("websocket read",
					logger.NewField("error", err),
				)
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}

		entityID := msg.OrderID
		if entityID == "" {
			entityID = msg.DeliveryID
		}
		if entityID == "" {
			continue
		}

		switch msg.Type {
		case "subscribe":
			c.registry.Subscribe(entityID, c)
		case "unsubscribe":
			c.registry.Unsubscribe(entityID, c)
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case frame := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			_ = c.conn.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait),
			)
			return
		}
	}
}
