package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale represents a completed sale as returned by GET /sales/{id}/invoice/.
// It is created server-side at sale time; the client only reads it.
type Sale struct {
	ID            int64           `json:"id"`
	InvoiceNo     string          `json:"invoice_no"`
	Date          time.Time       `json:"date"`
	ShopName      string          `json:"shop_name"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
	CustomerGSTIN string          `json:"customer_gstin,omitempty"`
	PlaceOfSupply string          `json:"place_of_supply"`
	Charges       decimal.Decimal `json:"charges"`
	Discount      decimal.Decimal `json:"discount"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
	Items         []SaleItem      `json:"items"`
}

// SaleItem represents a single line item on a sale. GSTAmount is the combined
// (CGST+SGST) tax already included in TotalAmount.
type SaleItem struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	HSNCode     string          `json:"hsn_code,omitempty"`
	IMEI        string          `json:"imei,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	GSTRate     decimal.Decimal `json:"gst_rate"`
	GSTAmount   decimal.Decimal `json:"gst_amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// TaxableValue returns the pre-tax value of the line. Derived, never stored:
// total_amount = taxable_value + gst_amount.
func (i SaleItem) TaxableValue() decimal.Decimal {
	return i.TotalAmount.Sub(i.GSTAmount)
}

// Subtotal returns the sum of all line totals before sale-level charges and
// discount are applied.
func (s *Sale) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.TotalAmount)
	}
	return total
}
