package notification_read_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/ifybugsy/odiya-store-sub002/internal/handlers/rest/dto"
	"github.com/ifybugsy/odiya-store-sub002/internal/pkg/auth"
	"github.com/ifybugsy/odiya-store-sub002/internal/service/notification"
	"github.com/ifybugsy/odiya-store-sub002/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

type markReadResponse struct {
	Success      bool             `json:"success"`
	Notification dto.Notification `json:"notification"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		dto.WriteError(w, http.StatusUnauthorized, "Missing or invalid bearer token.")
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		dto.WriteError(w, http.StatusBadRequest, "Invalid notification id.")
		return
	}

	res, err := h.service.MarkRead(r.Context(), claims.UserID, id)
	if err != nil {
		switch {
		case errors.Is(err, notification.ErrNotificationNotFound):
			dto.WriteError(w, http.StatusNotFound, "Notification not found.")
		default:
			dto.WriteError(w, http.StatusInternalServerError, "Internal server error.")
		}
		return
	}

	response := markReadResponse{
		Success:      true,
		Notification: dto.FromNotification(res),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
