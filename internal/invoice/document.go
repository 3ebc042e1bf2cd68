package invoice

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cellmart/pos-client/internal/domain/entity"
)

// Party identifies the buyer on an invoice.
type Party struct {
	Name  string
	Phone string
	GSTIN string
}

// Document holds everything a fixed-layout printed invoice needs. Values
// keep full precision; FormatAmount applies 2-decimal display formatting at
// render time.
type Document struct {
	InvoiceNo     string
	Date          time.Time
	Seller        entity.CompanyProfile
	Buyer         Party
	PlaceOfSupply string

	Lines []ItemBreakdown

	Subtotal     decimal.Decimal
	TaxableTotal decimal.Decimal
	CGSTTotal    decimal.Decimal
	SGSTTotal    decimal.Decimal
	Charges      decimal.Decimal
	Discount     decimal.Decimal
	GrandTotal   decimal.Decimal

	AmountInWords string

	// Logo is nil when the image failed to load; renderers fall back to a
	// placeholder glyph.
	Logo []byte
}

// BuildDocument assembles the printable document. profile may be nil (its
// fetch is allowed to fail); the header then renders from the sale's shop
// name alone.
func BuildDocument(sale *entity.Sale, profile *entity.CompanyProfile, logo []byte) *Document {
	doc := &Document{
		InvoiceNo:     sale.InvoiceNo,
		Date:          sale.Date,
		Buyer:         Party{Name: sale.CustomerName, Phone: sale.CustomerPhone, GSTIN: sale.CustomerGSTIN},
		PlaceOfSupply: sale.PlaceOfSupply,
		Lines:         Breakdown(sale.Items),
		Charges:       sale.Charges,
		Discount:      sale.Discount,
		GrandTotal:    sale.GrandTotal,
		Logo:          logo,
	}

	if profile != nil {
		doc.Seller = *profile
	} else {
		doc.Seller = entity.CompanyProfile{Name: sale.ShopName}
	}

	for _, line := range doc.Lines {
		doc.Subtotal = doc.Subtotal.Add(line.Item.TotalAmount)
		doc.TaxableTotal = doc.TaxableTotal.Add(line.TaxableValue)
		doc.CGSTTotal = doc.CGSTTotal.Add(line.CGST)
		doc.SGSTTotal = doc.SGSTTotal.Add(line.SGST)
	}

	doc.AmountInWords = AmountInWords(doc.GrandTotal)
	return doc
}

// TaxTotal returns the combined CGST+SGST across the invoice.
func (d *Document) TaxTotal() decimal.Decimal {
	return d.CGSTTotal.Add(d.SGSTTotal)
}

// FormatAmount renders a value for display with exactly two decimals.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
