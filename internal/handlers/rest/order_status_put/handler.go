package order_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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

type statusUpdateRequest struct {
	Status string `json:"status"`
}

type statusUpdateResponse struct {
	Success bool      `json:"success"`
	Order   dto.Order `json:"order"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		dto.WriteError(w, http.StatusUnauthorized, "Missing or invalid bearer token.")
		return
	}

	orderID := mux.Vars(r)["id"]

	var req statusUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		dto.WriteError(w, http.StatusBadRequest, "Malformed request body.")
		return
	}

	res, err := h.service.UpdateStatus(r.Context(), claims, orderID, entities.OrderStatusType(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID):
			dto.WriteError(w, http.StatusBadRequest, "Invalid order id.")
		case errors.Is(err, order.ErrInvalidStatus):
			dto.WriteError(w, http.StatusBadRequest, "Unknown order status.")
		case errors.Is(err, order.ErrForbidden):
			dto.WriteError(w, http.StatusForbidden, "Not allowed to modify this order.")
		case errors.Is(err, order.ErrOrderNotFound):
			dto.WriteError(w, http.StatusNotFound, "Order not found.")
		default:
			dto.WriteError(w, http.StatusInternalServerError, "Internal server error.")
		}
		return
	}

	response := statusUpdateResponse{
		Success: true,
		Order:   dto.FromOrder(res),
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
