package orders_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ifybugsy/odiya-store-sub002/internal/entities"
	"github.com/ifybugsy/odiya-store-sub002/internal/handlers/rest/dto"
	"github.com/ifybugsy/odiya-store-sub002/internal/pkg/auth"
	"github.com/ifybugsy/odiya-store-sub002/internal/service/order"
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

	filter := entities.OrderFilter{}

	query := r.URL.Query()
	if statusStr := query.Get("status"); statusStr != "" {
		status := entities.OrderStatusType(statusStr)
		if !status.Valid() {
			dto.WriteError(w, http.StatusBadRequest, "Unknown order status.")
			return
		}
		filter.Status = &status
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

	orderEntities, err := h.service.List(r.Context(), claims, filter)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatus):
			dto.WriteError(w, http.StatusBadRequest, "Unknown order status.")
		case errors.Is(err, order.ErrForbidden):
			dto.WriteError(w, http.StatusForbidden, "Not allowed to list these orders.")
		default:
			dto.WriteError(w, http.StatusInternalServerError, "Internal server error.")
		}
		return
	}

	orderDTOs := make([]dto.Order, len(orderEntities))
	for i := range orderEntities {
		orderDTOs[i] = dto.FromOrder(&orderEntities[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
