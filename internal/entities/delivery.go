package entities

import "time"

type Delivery struct {
	ID              string
	OrderID         string
	RiderID         string
	PickupAddress   string
	PickupLat       float64
	PickupLng       float64
	DropoffAddress  string
	DropoffLat      float64
	DropoffLng      float64
	Status          DeliveryStatusType
	CurrentLocation *Location
	Rating          *int
	Feedback        *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Location is the most recent rider-reported position. Each update fully
// replaces the previous snapshot.
type Location struct {
	Latitude   float64
	Longitude  float64
	RecordedAt time.Time
}

type DeliveryStatusType string

const (
	DeliveryAssigned  DeliveryStatusType = "assigned"
	DeliveryPickedUp  DeliveryStatusType = "picked_up"
	DeliveryInTransit DeliveryStatusType = "in_transit"
	DeliveryDelivered DeliveryStatusType = "delivered"
	DeliveryFailed    DeliveryStatusType = "failed"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

type DeliveryModify struct {
	ID              *string
	Status          *DeliveryStatusType
	CurrentLocation *Location
	Rating          *int
	Feedback        *string
}
