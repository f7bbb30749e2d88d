package delivery

import "strings"

func isValidDeliveryID(deliveryID string) bool {
	return strings.TrimSpace(deliveryID) != ""
}

func isValidCoordinates(latitude, longitude float64) bool {
	return latitude >= -90 && latitude <= 90 && longitude >= -180 && longitude <= 180
}
