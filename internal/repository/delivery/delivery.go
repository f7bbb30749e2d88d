package delivery

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ifybugsy/odiya-store-sub002/internal/entities"
	deliveryservice "github.com/ifybugsy/odiya-store-sub002/internal/service/delivery"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const deliveryColumns = `id, order_id, rider_id,
		pickup_address, pickup_lat, pickup_lng,
		dropoff_address, dropoff_lat, dropoff_lng,
		status, current_lat, current_lng, location_at,
		rating, feedback, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE id = $1`

	return r.queryOne(ctx, query, id)
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID string) (*entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE order_id = $1`

	return r.queryOne(ctx, query, orderID)
}

// UpdateLocation overwrites the current-location snapshot. The previous
// snapshot is always fully replaced.
func (r *Repository) UpdateLocation(ctx context.Context, id string, location entities.Location) (*entities.Delivery, error) {
	return r.update(ctx, entities.DeliveryModify{
		ID:              &id,
		CurrentLocation: &location,
	})
}

func (r *Repository) UpdateStatus(ctx context.Context, id string, status entities.DeliveryStatusType) (*entities.Delivery, error) {
	return r.update(ctx, entities.DeliveryModify{
		ID:     &id,
		Status: &status,
	})
}

func (r *Repository) update(ctx context.Context, deliveryModifyEntity entities.DeliveryModify) (*entities.Delivery, error) {
	builder := qb.
		Update("deliveries")

	// optional fields
	if deliveryModifyEntity.Status != nil {
		builder = builder.Set("status", deliveryModifyEntity.Status.String())
	}
	if deliveryModifyEntity.CurrentLocation != nil {
		builder = builder.
			Set("current_lat", deliveryModifyEntity.CurrentLocation.Latitude).
			Set("current_lng", deliveryModifyEntity.CurrentLocation.Longitude).
			Set("location_at", deliveryModifyEntity.CurrentLocation.RecordedAt)
	}
	if deliveryModifyEntity.Rating != nil {
		builder = builder.Set("rating", *deliveryModifyEntity.Rating)
	}
	if deliveryModifyEntity.Feedback != nil {
		builder = builder.Set("feedback", *deliveryModifyEntity.Feedback)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": deliveryModifyEntity.ID}).
		Suffix("RETURNING " + deliveryColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	return r.queryOne(ctx, query, args...)
}

func (r *Repository) queryOne(ctx context.Context, query string, args ...interface{}) (*entities.Delivery, error) {
	var deliveryModel DeliveryDB
	err := r.querier.QueryRow(ctx, query, args...).Scan(
		&deliveryModel.ID,
		&deliveryModel.OrderID,
		&deliveryModel.RiderID,
		&deliveryModel.PickupAddress,
		&deliveryModel.PickupLat,
		&deliveryModel.PickupLng,
		&deliveryModel.DropoffAddress,
		&deliveryModel.DropoffLat,
		&deliveryModel.DropoffLng,
		&deliveryModel.Status,
		&deliveryModel.CurrentLat,
		&deliveryModel.CurrentLng,
		&deliveryModel.LocationAt,
		&deliveryModel.Rating,
		&deliveryModel.Feedback,
		&deliveryModel.CreatedAt,
		&deliveryModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, deliveryservice.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository error: %w", err)
	}

	return ToDomain(&deliveryModel), nil
}
