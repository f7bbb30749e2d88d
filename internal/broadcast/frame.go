package broadcast

// Frame is one push message to a subscribed client.
type Frame struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

const (
	FrameOrderStatus    = "order_status"
	FrameDeliveryUpdate = "delivery_update"
)

// OrderStatusData is the payload of an order_status frame.
type OrderStatusData struct {
	OrderID        string `json:"orderId"`
	PreviousStatus string `json:"previousStatus"`
	Status         string `json:"status"`
	BuyerID        string `json:"buyerId"`
}

// DeliveryUpdateData is the payload of a delivery_update frame.
type DeliveryUpdateData struct {
	DeliveryID string   `json:"deliveryId"`
	OrderID    string   `json:"orderId"`
	Status     string   `json:"status"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}
