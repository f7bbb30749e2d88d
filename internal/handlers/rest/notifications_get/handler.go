package notifications_get

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ifybugsy/odiya-store-sub002/internal/entities"
	"github.com/ifybugsy/odiya-store-sub002/internal/handlers/rest/dto"
	"github.com/ifybugsy/odiya-store-sub002/internal/pkg/auth"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		dto.WriteError(w, http.StatusUnauthorized, "Missing or invalid bearer token.")
		return
	}

	filter := entities.NotificationFilter{}

	query := r.URL.Query()
	if unreadStr := query.Get("unread"); unreadStr != "" {
		unread, err := strconv.ParseBool(unreadStr)
		if err != nil {
			dto.WriteError(w, http.StatusBadRequest, "Invalid unread parameter.")
			return
		}
		filter.Unread = &unread
	}
	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			dto.WriteError(w, http.StatusBadRequest, "Invalid limit parameter.")
			return
		}
		filter.Limit = limit
	}
	if offsetStr := query.Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			dto.WriteError(w, http.StatusBadRequest, "Invalid offset parameter.")
			return
		}
		filter.Offset = offset
	}

	notificationEntities, err := h.service.List(r.Context(), claims.UserID, filter)
	if err != nil {
		dto.WriteError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	notificationDTOs := make([]dto.Notification, len(notificationEntities))
	for i := range notificationEntities {
		notificationDTOs[i] = dto.FromNotification(&notificationEntities[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(notificationDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
