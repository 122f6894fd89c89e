package reports

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Fractional digits used on the wire
const (
	AmountPlaces     = 2
	ItemAmountPlaces = 5
)

// Amount renders an order or payment amount as a JSON number with two
// decimal places, rounding half away from zero
func Amount(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(AmountPlaces))
}

// ItemAmount renders an item level price or total with five decimal places
func ItemAmount(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(ItemAmountPlaces))
}

// OptionalAmount is Amount for values that may be absent
func OptionalAmount(d *decimal.Decimal) *json.Number {
	if d == nil {
		return nil
	}
	n := Amount(*d)
	return &n
}
