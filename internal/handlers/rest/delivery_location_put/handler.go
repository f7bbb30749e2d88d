package delivery_location_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ifybugsy/odiya-store-sub002/internal/handlers/rest/dto"
	"github.com/ifybugsy/odiya-store-sub002/internal/pkg/auth"
	"github.com/ifybugsy/odiya-store-sub002/internal/service/delivery"
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

type locationUpdateRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type locationUpdateResponse struct {
	Success  bool         `json:"success"`
	Delivery dto.Delivery `json:"delivery"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		dto.WriteError(w, http.StatusUnauthorized, "Missing or invalid bearer token.")
		return
	}

	deliveryID := mux.Vars(r)["id"]

	var req locationUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.Latitude == nil || req.Longitude == nil {
		dto.WriteError(w, http.StatusBadRequest, "Malformed request body.")
		return
	}

	res, err := h.service.UpdateLocation(r.Context(), claims, deliveryID, *req.Latitude, *req.Longitude)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidDeliveryID):
			dto.WriteError(w, http.StatusBadRequest, "Invalid delivery id.")
		case errors.Is(err, delivery.ErrInvalidCoordinates):
			dto.WriteError(w, http.StatusBadRequest, "Coordinates out of range.")
		case errors.Is(err, delivery.ErrNotAssignedRider):
			dto.WriteError(w, http.StatusForbidden, "Not the assigned rider.")
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			dto.WriteError(w, http.StatusNotFound, "Delivery not found.")
		default:
			dto.WriteError(w, http.StatusInternalServerError, "Internal server error.")
		}
		return
	}

	response := locationUpdateResponse{
		Success:  true,
		Delivery: dto.FromDelivery(res),
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
