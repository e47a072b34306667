package models

// Product represents a catalog product. The id is caller-supplied and
// globally unique; products are immutable after registration.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}
