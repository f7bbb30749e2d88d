package delivery

import "time"

type DeliveryDB struct {
	ID             string
	OrderID        string
	RiderID        string
	PickupAddress  string
	PickupLat      float64
	PickupLng      float64
	DropoffAddress string
	DropoffLat     float64
	DropoffLng     float64
	Status         string
	CurrentLat     *float64
	CurrentLng     *float64
	LocationAt     *time.Time
	Rating         *int
	Feedback       *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
