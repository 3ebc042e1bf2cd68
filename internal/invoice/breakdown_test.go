package invoice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cellmart/pos-client/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestBreakdownItemSplitsGSTEvenly(t *testing.T) {
	item := entity.SaleItem{
		Name:        "Galaxy A15",
		Quantity:    1,
		UnitPrice:   dec("118.00"),
		GSTRate:     dec("18"),
		GSTAmount:   dec("18.00"),
		TotalAmount: dec("118.00"),
	}

	line := BreakdownItem(item)

	assert.True(t, line.TaxableValue.Equal(dec("100.00")), "taxable = %s", line.TaxableValue)
	assert.True(t, line.CGST.Equal(dec("9.00")), "cgst = %s", line.CGST)
	assert.True(t, line.SGST.Equal(dec("9.00")), "sgst = %s", line.SGST)
	assert.True(t, line.CGSTRate.Equal(dec("9")))
	assert.True(t, line.SGSTRate.Equal(dec("9")))
}

func TestBreakdownItemZeroGST(t *testing.T) {
	item := entity.SaleItem{
		Name:        "Screen guard",
		Quantity:    2,
		UnitPrice:   dec("50.00"),
		GSTRate:     decimal.Zero,
		GSTAmount:   decimal.Zero,
		TotalAmount: dec("100.00"),
	}

	line := BreakdownItem(item)

	assert.True(t, line.CGST.IsZero())
	assert.True(t, line.SGST.IsZero())
	assert.True(t, line.CGSTRate.IsZero())
	assert.True(t, line.TaxableValue.Equal(dec("100.00")))
}

func TestBreakdownItemHalvesSumExactly(t *testing.T) {
	// Odd paise amounts must still reconcile: CGST + SGST == GST to the digit.
	amounts := []string{"0.01", "0.03", "1.11", "17.77", "9999.99"}
	for _, a := range amounts {
		gst := dec(a)
		line := BreakdownItem(entity.SaleItem{GSTAmount: gst, TotalAmount: gst})
		sum := line.CGST.Add(line.SGST)
		assert.True(t, sum.Equal(gst), "gst %s split to %s + %s", a, line.CGST, line.SGST)
	}
}

func TestBreakdownKeepsLineOrder(t *testing.T) {
	items := []entity.SaleItem{
		{Name: "first", GSTAmount: dec("1"), TotalAmount: dec("11")},
		{Name: "second", GSTAmount: dec("2"), TotalAmount: dec("22")},
	}

	lines := Breakdown(items)

	assert.Len(t, lines, 2)
	assert.Equal(t, "first", lines[0].Item.Name)
	assert.Equal(t, "second", lines[1].Item.Name)
}
