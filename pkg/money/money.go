// Package money sums and compares currency-agnostic amounts without
// accumulating binary floating point error.
package money

import (
	"sort"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Sum adds amounts exactly and returns the rounded float result.
func Sum(amounts ...float64) float64 {
	total := decimal.Zero
	for _, amount := range amounts {
		total = total.Add(decimal.NewFromFloat(amount))
	}
	return total.InexactFloat64()
}

// Sub returns a - b.
func Sub(a, b float64) float64 {
	return decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).InexactFloat64()
}

// Percent returns part/whole*100, or 0 when whole is not positive.
func Percent(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return decimal.NewFromFloat(part).
		Div(decimal.NewFromFloat(whole)).
		Mul(hundred).
		InexactFloat64()
}

// Totals groups amounts by key.
type Totals struct {
	sums map[string]decimal.Decimal
}

func NewTotals() *Totals {
	return &Totals{sums: make(map[string]decimal.Decimal)}
}

func (t *Totals) Add(key string, amount float64) {
	t.sums[key] = t.sums[key].Add(decimal.NewFromFloat(amount))
}

func (t *Totals) Len() int {
	return len(t.sums)
}

// Keys returns the keys in ascending order.
func (t *Totals) Keys() []string {
	keys := make([]string, 0, len(t.sums))
	for key := range t.sums {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (t *Totals) Get(key string) float64 {
	return t.sums[key].InexactFloat64()
}

func (t *Totals) Map() map[string]float64 {
	out := make(map[string]float64, len(t.sums))
	for key, sum := range t.sums {
		out[key] = sum.InexactFloat64()
	}
	return out
}
