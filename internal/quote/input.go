package quote

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/wodanio-group/bos/internal/db/models"
)

// validate is the shared validator instance for quote inputs.
var validate = validator.New() //nolint:gochecknoglobals

// ItemInput is a line item as submitted by a caller, before the derived
// money fields exist.
type ItemInput struct {
	QuotePosition int     `json:"quotePosition" validate:"min=0"`
	Title         string  `json:"title"         validate:"required"`
	Description   *string `json:"description"`
	Quantity      float64 `json:"quantity"      validate:"min=0"`
	Unit          *string `json:"unit"`
	Price         float64 `json:"price"`
	TaxRate       float64 `json:"taxRate"       validate:"min=0,max=1"`
}

// Validate checks the line item against the API contract: non-negative
// position and quantity, a non-blank title and a fractional tax rate
// between 0 and 1. The title is trimmed in place.
func (i *ItemInput) Validate() error {
	i.Title = strings.TrimSpace(i.Title)

	return validate.Struct(i)
}

// BuildItems validates the inputs and computes the derived money fields
// of each line item.
func BuildItems(inputs []ItemInput) ([]models.QuoteItem, error) {
	items := make([]models.QuoteItem, 0, len(inputs))

	for idx := range inputs {
		in := &inputs[idx]
		if err := in.Validate(); err != nil {
			return nil, err
		}

		t := ItemTotals(in.Quantity, in.Price, in.TaxRate)

		items = append(items, models.QuoteItem{
			QuotePosition: in.QuotePosition,
			Title:         in.Title,
			Description:   in.Description,
			Quantity:      in.Quantity,
			Unit:          in.Unit,
			Price:         in.Price,
			TaxRate:       in.TaxRate,
			Subtotal:      t.Subtotal,
			Tax:           t.Tax,
			Total:         t.Total,
		})
	}

	return items, nil
}

// ApplyTotals recomputes the quote-level derived fields from its items.
// Must be called whenever the item set changes; items are replaced
// wholesale on update, never diffed.
func ApplyTotals(q *models.Quote) {
	totals := make([]Totals, 0, len(q.Items))
	for _, item := range q.Items {
		totals = append(totals, Totals{
			Subtotal: item.Subtotal,
			Tax:      item.Tax,
			Total:    item.Total,
		})
	}

	sum := Sum(totals)
	q.Subtotal = sum.Subtotal
	q.Tax = sum.Tax
	q.Total = sum.Total
}
