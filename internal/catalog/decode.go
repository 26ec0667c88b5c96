package catalog

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/averla/storeview/internal/domain/product"
)

// decodeProduct decodes a catalog product record. Monetary and rating values
// are decoded from the raw JSON number so 109.95 survives exactly instead of
// passing through a float64.
func decodeProduct(data []byte) (*product.Product, error) {
	var p product.Product

	d := jx.DecodeBytes(data)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "id":
			id, err := d.Int()
			if err != nil {
				return errors.Wrap(err, "id")
			}
			p.ID = id
		case "title":
			title, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "title")
			}
			p.Title = title
		case "price":
			price, err := decodeDecimal(d)
			if err != nil {
				return errors.Wrap(err, "price")
			}
			p.Price = price
		case "description":
			desc, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "description")
			}
			p.Description = desc
		case "category":
			category, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "category")
			}
			p.Category = category
		case "image":
			image, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "image")
			}
			p.Image = image
		case "rating":
			rating, err := decodeRating(d)
			if err != nil {
				return errors.Wrap(err, "rating")
			}
			p.Rating = rating
		default:
			return d.Skip()
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return &p, nil
}

func decodeRating(d *jx.Decoder) (product.Rating, error) {
	var r product.Rating
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "rate":
			rate, err := decodeDecimal(d)
			if err != nil {
				return errors.Wrap(err, "rate")
			}
			r.Rate = rate
		case "count":
			count, err := d.Int()
			if err != nil {
				return errors.Wrap(err, "count")
			}
			r.Count = count
		default:
			return d.Skip()
		}
		return nil
	})
	return r, err
}

func decodeDecimal(d *jx.Decoder) (decimal.Decimal, error) {
	num, err := d.Num()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromString(num.String())
}
