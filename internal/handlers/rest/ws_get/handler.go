package ws_get

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ifybugsy/odiya-store-sub002/pkg/logger"
)

// closeCodeUnauthorized is sent when the connect token does not verify.
const closeCodeUnauthorized = 4401

type Handler struct {
	log      handlerLogger
	verifier TokenVerifier
	registry Registry

	upgrader websocket.Upgrader
}

func New(log handlerLogger, verifier TokenVerifier, registry Registry) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		verifier: verifier,
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the connection. The token query parameter is verified
// exactly once here; a bad token gets an unauthorized close frame and the
// connection is dropped.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims, authErr := h.verifier.Parse(r.URL.Query().Get("token"))

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade",
			logger.NewField("error", err),
		)
		return
	}

	if authErr != nil {
		_ = conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(closeCodeUnauthorized, "unauthorized"),
			time.Now().Add(writeWait),
		)
		_ = conn.Close()
		return
	}

	client := newClient(
		h.log.With(logger.NewField("user_id", claims.UserID)),
		conn,
		h.registry,
	)

	go client.writePump()
	go client.readPump()
}
