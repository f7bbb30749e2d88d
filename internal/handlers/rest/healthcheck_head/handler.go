package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

// Handler answers load balancer probes: 204 while serving, 503 once shutdown
// begins so the instance drains before the listener stops.
type Handler struct {
	shuttingDown *atomic.Bool
}

func New(shuttingDown *atomic.Bool) *Handler {
	return &Handler{
		shuttingDown: shuttingDown,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := http.StatusNoContent
	if h.shuttingDown.Load() {
		status = http.StatusServiceUnavailable
	}
	w.WriteHeader(status)
}
