package delivery

import "errors"

var (
	ErrInvalidDeliveryID  = errors.New("invalid delivery id")
	ErrInvalidCoordinates = errors.New("invalid coordinates")

	ErrDeliveryNotFound = errors.New("delivery not found")
	ErrNotAssignedRider = errors.New("caller is not the assigned rider")
)
