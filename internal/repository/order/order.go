package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ifybugsy/odiya-store-sub002/internal/entities"
	orderservice "github.com/ifybugsy/odiya-store-sub002/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, buyer_id, seller_id, rider_id, items, total_amount, status,
		shipping_address, payment_method, payment_status,
		delivery_started_at, delivered_at, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&orderModel.ID,
		&orderModel.BuyerID,
		&orderModel.SellerID,
		&orderModel.RiderID,
		&orderModel.Items,
		&orderModel.TotalAmount,
		&orderModel.Status,
		&orderModel.ShippingAddress,
		&orderModel.PaymentMethod,
		&orderModel.PaymentStatus,
		&orderModel.DeliveryStartedAt,
		&orderModel.DeliveredAt,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel)
}

func (r *Repository) Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	builder := qb.
		Update("orders")

	// optional fields
	if orderModifyEntity.Status != nil {
		builder = builder.Set("status", orderModifyEntity.Status.String())
	}
	if orderModifyEntity.DeliveryStartedAt != nil {
		builder = builder.Set("delivery_started_at", *orderModifyEntity.DeliveryStartedAt)
	}
	if orderModifyEntity.DeliveredAt != nil {
		builder = builder.Set("delivered_at", *orderModifyEntity.DeliveredAt)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": orderModifyEntity.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderModel OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&orderModel.ID,
		&orderModel.BuyerID,
		&orderModel.SellerID,
		&orderModel.RiderID,
		&orderModel.Items,
		&orderModel.TotalAmount,
		&orderModel.Status,
		&orderModel.ShippingAddress,
		&orderModel.PaymentMethod,
		&orderModel.PaymentStatus,
		&orderModel.DeliveryStartedAt,
		&orderModel.DeliveredAt,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(&orderModel)
}

func (r *Repository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := qb.
		Select(orderColumns).
		From("orders")

	if filter.BuyerID != nil {
		builder = builder.Where(sq.Eq{"buyer_id": *filter.BuyerID})
	}
	if filter.SellerID != nil {
		builder = builder.Where(sq.Eq{"seller_id": *filter.SellerID})
	}
	if filter.RiderID != nil {
		builder = builder.Where(sq.Eq{"rider_id": *filter.RiderID})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}

	builder = builder.OrderBy("created_at DESC")

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	var orders []entities.Order
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(
			&orderModel.ID,
			&orderModel.BuyerID,
			&orderModel.SellerID,
			&orderModel.RiderID,
			&orderModel.Items,
			&orderModel.TotalAmount,
			&orderModel.Status,
			&orderModel.ShippingAddress,
			&orderModel.PaymentMethod,
			&orderModel.PaymentStatus,
			&orderModel.DeliveryStartedAt,
			&orderModel.DeliveredAt,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list scan error: %w", err)
		}

		orderDomain, err := ToDomain(&orderModel)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *orderDomain)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list rows error: %w", err)
	}

	return orders, nil
}
