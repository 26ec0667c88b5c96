package product

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when the requested product does not exist.
var ErrNotFound = errors.New("product not found")

// listPriceMarkup is the multiplier applied to Price to derive the
// struck-through reference price shown next to it.
var listPriceMarkup = decimal.RequireFromString("1.2")

// Product is a single catalog item, fetched once per mount and read-only
// afterwards.
type Product struct {
	ID          int
	Title       string
	Price       decimal.Decimal
	Description string
	Category    string
	Image       string
	Rating      Rating
}

// Rating holds the aggregate review score for a product.
type Rating struct {
	Rate  decimal.Decimal
	Count int
}

// ListPrice returns the presentation-only reference price: Price with a fixed
// markup, rounded to 2 decimal places. It is derived at render time and never
// stored.
func (p Product) ListPrice() decimal.Decimal {
	return p.Price.Mul(listPriceMarkup).Round(2)
}

// Fetcher defines the read operation the product view depends on.
type Fetcher interface {
	Fetch(ctx context.Context, id int) (*Product, error)
}
