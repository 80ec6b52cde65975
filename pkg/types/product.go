package types

import "github.com/shopspring/decimal"

// Product is a catalog entry as the store front displays it.
type Product struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
	ImageURL    string          `json:"image,omitempty"`
}
