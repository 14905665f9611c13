package parts

// Part is an inventory record owned by the parts API. The bot never stores
// these; it only renders what the last fetch returned.
type Part struct {
	ID            string  `json:"_id"`
	Name          string  `json:"name"`
	SKU           string  `json:"sku"`
	Category      string  `json:"category"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	MinStockLevel int     `json:"minStockLevel"`
	Location      string  `json:"location,omitempty"`
}

// Draft carries the writable fields for create and update calls.
type Draft struct {
	Name          string  `json:"name"`
	SKU           string  `json:"sku"`
	Category      string  `json:"category"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	MinStockLevel int     `json:"minStockLevel"`
	Location      string  `json:"location,omitempty"`
}
