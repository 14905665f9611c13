package sales

import "time"

// Item is one sold line inside a recorded sale. WholesalePrice is absent on
// legacy sales; profit math then treats the cost as zero.
type Item struct {
	PartID         string  `json:"part"`
	Name           string  `json:"name"`
	SKU            string  `json:"sku"`
	Price          float64 `json:"price"`
	WholesalePrice float64 `json:"wholesalePrice,omitempty"`
	Quantity       int     `json:"quantity"`
	Total          float64 `json:"total"`
}

// Sale is created server-side on checkout and immutable afterwards.
type Sale struct {
	ID           string    `json:"_id"`
	CustomerName string    `json:"customerName"`
	Items        []Item    `json:"items"`
	Subtotal     float64   `json:"subtotal"`
	GSTRate      float64   `json:"gstRate"`
	GSTAmount    float64   `json:"gstAmount"`
	GrandTotal   float64   `json:"grandTotal"`
	CreatedAt    time.Time `json:"createdAt"`
}

// DraftItem and Draft are the checkout payload: the API re-reads prices and
// deducts stock itself, so only part ids and quantities travel.
type DraftItem struct {
	PartID   string `json:"part"`
	Quantity int    `json:"quantity"`
}

type Draft struct {
	Items        []DraftItem `json:"items"`
	CustomerName string      `json:"customerName"`
	GSTRate      float64     `json:"gstRate"`
}
