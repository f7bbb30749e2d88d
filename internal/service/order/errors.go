package order

import "errors"

var (
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrInvalidStatus  = errors.New("invalid order status")

	ErrOrderNotFound = errors.New("order not found")
	ErrForbidden     = errors.New("caller is not the order seller or an admin")
)
