package delivery

import "github.com/ifybugsy/odiya-store-sub002/internal/entities"

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}

	deliveryDomain := &entities.Delivery{
		ID:             d.ID,
		OrderID:        d.OrderID,
		RiderID:        d.RiderID,
		PickupAddress:  d.PickupAddress,
		PickupLat:      d.PickupLat,
		PickupLng:      d.PickupLng,
		DropoffAddress: d.DropoffAddress,
		DropoffLat:     d.DropoffLat,
		DropoffLng:     d.DropoffLng,
		Status:         entities.DeliveryStatusType(d.Status),
		Rating:         d.Rating,
		Feedback:       d.Feedback,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}

	// All three snapshot columns are written together; a partially populated
	// snapshot means no location has been reported yet.
	if d.CurrentLat != nil && d.CurrentLng != nil && d.LocationAt != nil {
		deliveryDomain.CurrentLocation = &entities.Location{
			Latitude:   *d.CurrentLat,
			Longitude:  *d.CurrentLng,
			RecordedAt: *d.LocationAt,
		}
	}

	return deliveryDomain
}
