package model

// Status is the derived lifecycle state of a shipment.
type Status string

const (
	// StatusPending means the shipment has no usable dates yet.
	StatusPending Status = "pending"
	// StatusShipped means the shipment left the warehouse and is in transit.
	StatusShipped Status = "shipped"
	// StatusDelivered means the sheet records a delivery date.
	StatusDelivered Status = "delivered"
	// StatusDelayed means the expected delivery date has passed without delivery.
	StatusDelayed Status = "delayed"
)

// TrackingRecord is one normalized row of the published tracking sheet.
// Normalization fills missing or malformed cells with defaults, so every
// field is always safe to render; only DeliveryDate may be empty, which
// means the shipment has not been delivered yet.
type TrackingRecord struct {
	OrderID          int    `json:"order_id"`
	InvoiceID        int    `json:"invoice_id"`
	ShippedDate      string `json:"shipped_date"`
	ExpectedDelivery string `json:"expected_delivery_date"`
	DeliveryDate     string `json:"delivery_date,omitempty"`
	City             string `json:"city"`
	State            string `json:"state"`
	Carrier          string `json:"carrier"`
	ProductValue     string `json:"product_value"`
	ShippingValue    string `json:"shipping_value"`
	Quantity         int    `json:"quantity"`
	ProductType      string `json:"product_type"`
	Model            string `json:"model"`
}

// StatusInfo pairs a Status with its display label and the style keys the
// web client renders with. The keys are opaque to the server.
type StatusInfo struct {
	Status  Status `json:"status"`
	Label   string `json:"label"`
	Color   string `json:"color"`
	BgColor string `json:"bg_color"`
}

// Timing holds the day counts derived from a record's dates. A nil count
// means the underlying dates were missing or unparseable. DaysUntilDelivery
// goes negative once the expected date has passed.
type Timing struct {
	DaysInTransit     *int `json:"days_in_transit"`
	DaysUntilDelivery *int `json:"days_until_delivery"`
}
