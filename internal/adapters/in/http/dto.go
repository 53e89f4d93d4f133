package http

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewProduct is the request body for registering a catalog entry.
// Category selects which of the optional fields must be present:
// "Perishable" requires expiryDate and requiredTemperature, "Durable"
// requires materialType.
type NewProduct struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	BasePrice           float64 `json:"basePrice"`
	Volume              float64 `json:"volume"`
	Weight              float64 `json:"weight"`
	Category            string  `json:"category"`
	ExpiryDate          string  `json:"expiryDate,omitempty"`
	RequiredTemperature int     `json:"requiredTemperature,omitempty"`
	MaterialType        string  `json:"materialType,omitempty"`
	Fragile             bool    `json:"fragile,omitempty"`
}

// UpdatePrice is the request body for repricing a catalog entry.
type UpdatePrice struct {
	NewPrice float64 `json:"newPrice"`
}

// NewLocation is the request body for appending a storage location.
// Kind selects the optional fields: "Shelf" requires maxHeight,
// "TemperatureUnit" requires minTemp and maxTemp.
type NewLocation struct {
	ID        string  `json:"id"`
	Kind      string  `json:"kind"`
	Capacity  float64 `json:"capacity"`
	MaxHeight float64 `json:"maxHeight,omitempty"`
	MinTemp   int     `json:"minTemp,omitempty"`
	MaxTemp   int     `json:"maxTemp,omitempty"`
}

// Placement is the response body for a successful placement.
type Placement struct {
	ProductID  string `json:"productId"`
	LocationID string `json:"locationId"`
}

// NewOrder is the request body for creating an order.
type NewOrder struct {
	ID         string   `json:"id"`
	Customer   string   `json:"customer"`
	ProductIDs []string `json:"productIds"`
}

// ShipOrder is the request body for shipping an order.
type ShipOrder struct {
	ShipmentID string `json:"shipmentId"`
	Carrier    string `json:"carrier"`
}

// Shipped is the response body for a successful ship request.
type Shipped struct {
	ShipmentID   string `json:"shipmentId"`
	TrackingCode string `json:"trackingCode"`
}

// CancelOrder is the request body for cancelling an order.
type CancelOrder struct {
	Reason string `json:"reason,omitempty"`
}
