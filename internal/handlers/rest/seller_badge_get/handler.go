package seller_badge_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ifybugsy/odiya-store-sub002/internal/handlers/rest/dto"
	"github.com/ifybugsy/odiya-store-sub002/internal/service/badge"
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

type badgeStats struct {
	ItemsListed  int64   `json:"items_listed"`
	ItemsSold    int64   `json:"items_sold"`
	ContactCount int64   `json:"contact_count"`
	Rating       float64 `json:"rating"`
	RatingCount  int64   `json:"rating_count"`
}

type badgeResponse struct {
	SellerID string     `json:"seller_id"`
	Badge    string     `json:"badge"`
	Stats    badgeStats `json:"stats"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sellerID := mux.Vars(r)["id"]

	res, err := h.service.GetSellerBadge(r.Context(), sellerID)
	if err != nil {
		switch {
		case errors.Is(err, badge.ErrSellerNotFound):
			dto.WriteError(w, http.StatusNotFound, "Seller not found.")
		default:
			dto.WriteError(w, http.StatusInternalServerError, "Internal server error.")
		}
		return
	}

	response := badgeResponse{
		SellerID: res.SellerID,
		Badge:    res.Tier.String(),
		Stats: badgeStats{
			ItemsListed:  res.Stats.ItemsListed,
			ItemsSold:    res.Stats.ItemsSold,
			ContactCount: res.Stats.ContactCount,
			Rating:       res.Stats.Rating,
			RatingCount:  res.Stats.RatingCount,
		},
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
