// Package invoice turns a fetched sale into the values a printable GST
// invoice needs and drives the print lifecycle.
package invoice

import (
	"github.com/shopspring/decimal"

	"github.com/cellmart/pos-client/internal/domain/entity"
)

var two = decimal.NewFromInt(2)

// ItemBreakdown is the per-line tax split for a domestic sale: the combined
// GST divides evenly into central and state halves. There is no provision
// for inter-state IGST here.
type ItemBreakdown struct {
	Item         entity.SaleItem
	TaxableValue decimal.Decimal
	CGST         decimal.Decimal
	SGST         decimal.Decimal
	CGSTRate     decimal.Decimal
	SGSTRate     decimal.Decimal
}

// BreakdownItem splits a line item's GST 50/50. The SGST half is computed by
// subtraction so CGST + SGST equals the original GST amount exactly, even if
// halving ever truncated. Zero-GST lines yield all zeros.
func BreakdownItem(item entity.SaleItem) ItemBreakdown {
	cgst := item.GSTAmount.Div(two)
	sgst := item.GSTAmount.Sub(cgst)
	halfRate := item.GSTRate.Div(two)

	return ItemBreakdown{
		Item:         item,
		TaxableValue: item.TaxableValue(),
		CGST:         cgst,
		SGST:         sgst,
		CGSTRate:     halfRate,
		SGSTRate:     halfRate,
	}
}

// Breakdown computes the tax split for every line of a sale, in order.
func Breakdown(items []entity.SaleItem) []ItemBreakdown {
	lines := make([]ItemBreakdown, len(items))
	for i, item := range items {
		lines[i] = BreakdownItem(item)
	}
	return lines
}
