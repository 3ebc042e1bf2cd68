// Package printsurface renders invoice documents onto concrete print
// targets: thermal receipt printers and plain-text writers.
package printsurface

import (
	"context"

	"github.com/cellmart/pos-client/internal/invoice"
	"github.com/cellmart/pos-client/pkg/escpos"
)

// ThermalSurface prints invoices to an ESC/POS thermal printer.
type ThermalSurface struct {
	transport escpos.Transport
	width     int
}

// NewThermalSurface renders at the given character width (32 for 58mm paper,
// 48 for 80mm).
func NewThermalSurface(transport escpos.Transport, width int) *ThermalSurface {
	return &ThermalSurface{transport: transport, width: width}
}

func (s *ThermalSurface) Name() string { return "thermal" }

// Print formats the document as an ESC/POS stream and ships it. The context
// is checked before the (blocking) transport write.
func (s *ThermalSurface) Print(ctx context.Context, doc *invoice.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.transport.Send(FormatInvoice(doc, s.width))
}

// FormatInvoice lays out a GST tax invoice for a receipt printer: centered
// seller header, line items, per-rate CGST/SGST rows, totals, amount in words.
func FormatInvoice(doc *invoice.Document, width int) []byte {
	b := escpos.NewBuilder(width)

	b.Align(escpos.AlignCenter).
		Bold(true).Size(escpos.SizeDouble).
		Line(doc.Seller.Name).
		Size(escpos.SizeNormal).Bold(false)
	if doc.Seller.Address != "" {
		b.Line(doc.Seller.Address)
	}
	if doc.Seller.Phone != "" {
		b.Linef("Ph: %s", doc.Seller.Phone)
	}
	if doc.Seller.GSTIN != "" {
		b.Linef("GSTIN: %s", doc.Seller.GSTIN)
	}
	b.Bold(true).Line("TAX INVOICE").Bold(false)

	b.Align(escpos.AlignLeft).Rule('-')
	b.TwoCol("Invoice: "+doc.InvoiceNo, doc.Date.Format("02/01/2006"))
	if doc.Buyer.Name != "" {
		b.Linef("Customer: %s", doc.Buyer.Name)
	}
	if doc.Buyer.Phone != "" {
		b.Linef("Phone: %s", doc.Buyer.Phone)
	}
	if doc.Buyer.GSTIN != "" {
		b.Linef("Cust GSTIN: %s", doc.Buyer.GSTIN)
	}
	if doc.PlaceOfSupply != "" {
		b.Linef("Place of Supply: %s", doc.PlaceOfSupply)
	}
	b.Rule('-')

	for _, line := range doc.Lines {
		b.ItemRow(line.Item.Quantity, line.Item.Name, invoice.FormatAmount(line.Item.TotalAmount))
		if line.Item.HSNCode != "" {
			b.Linef("  HSN: %s", line.Item.HSNCode)
		}
		if line.Item.IMEI != "" {
			b.Linef("  IMEI: %s", line.Item.IMEI)
		}
		if !line.CGST.IsZero() || !line.SGST.IsZero() {
			b.Linef("  CGST @%s%%: %s  SGST @%s%%: %s",
				line.CGSTRate.String(), invoice.FormatAmount(line.CGST),
				line.SGSTRate.String(), invoice.FormatAmount(line.SGST))
		}
	}

	b.Rule('-')
	b.TwoCol("Taxable Value", invoice.FormatAmount(doc.TaxableTotal))
	b.TwoCol("CGST", invoice.FormatAmount(doc.CGSTTotal))
	b.TwoCol("SGST", invoice.FormatAmount(doc.SGSTTotal))
	if !doc.Charges.IsZero() {
		b.TwoCol("Charges", invoice.FormatAmount(doc.Charges))
	}
	if !doc.Discount.IsZero() {
		b.TwoCol("Discount", "-"+invoice.FormatAmount(doc.Discount))
	}
	b.Rule('=')
	b.Bold(true).TwoCol("GRAND TOTAL", "Rs "+invoice.FormatAmount(doc.GrandTotal)).Bold(false)
	b.Rule('=')

	b.Line(doc.AmountInWords)
	b.Feed(1)
	b.Align(escpos.AlignCenter).Line("Thank you for your business!")
	b.Feed(3).Cut()

	return b.Bytes()
}
