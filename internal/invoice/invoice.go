// Package invoice computes invoice totals and renders the fixed-format
// invoice PDF handed to clients.
package invoice

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// TaxRate is the VAT applied to every invoice subtotal.
const TaxRate = 0.075

// Item is one invoice line. Amount is always derived, never supplied.
type Item struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Rate        float64 `json:"rate"`
}

// Amount returns quantity × rate for the line.
func (it Item) Amount() float64 {
	return float64(it.Quantity) * it.Rate
}

// Invoice is the document header plus its ordered line items.
type Invoice struct {
	Number        string `json:"invoice_number"`
	Date          string `json:"date"`
	ClientName    string `json:"client_name"`
	ClientAddress string `json:"client_address,omitempty"`
	Items         []Item `json:"items"`
	Notes         string `json:"notes,omitempty"`
}

// Subtotal sums the line amounts.
func (inv Invoice) Subtotal() float64 {
	var sum float64
	for _, it := range inv.Items {
		sum += it.Amount()
	}
	return sum
}

// Tax returns the VAT on the subtotal, rounded to 2 decimals (half up).
func (inv Invoice) Tax() float64 {
	return round2(inv.Subtotal() * TaxRate)
}

// Total returns subtotal plus tax.
func (inv Invoice) Total() float64 {
	return round2(inv.Subtotal() + inv.Tax())
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// formatAmount renders a monetary value with thousands separators and, if
// the value is not whole, up to two decimals with trailing zeros dropped:
// 2150 -> "2,150", 163.13 -> "163.13", 999.5 -> "999.5".
func formatAmount(v float64) string {
	v = round2(v)
	neg := v < 0
	if neg {
		v = -v
	}

	whole := int64(v)
	frac := round2(v - float64(whole))

	s := strconv.FormatInt(whole, 10)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String()

	if frac > 0 {
		f := strings.TrimRight(fmt.Sprintf("%.2f", frac), "0")
		f = strings.TrimSuffix(f, ".")
		out += strings.TrimPrefix(f, "0")
	}
	if neg {
		out = "-" + out
	}
	return out
}
