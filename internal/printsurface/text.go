package printsurface

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cellmart/pos-client/internal/invoice"
)

// TextSurface writes a plain-text rendering of the invoice to a writer.
// Used by the CLI for terminal preview and by tests.
type TextSurface struct {
	w     io.Writer
	width int
}

func NewTextSurface(w io.Writer, width int) *TextSurface {
	if width <= 0 {
		width = 48
	}
	return &TextSurface{w: w, width: width}
}

func (s *TextSurface) Name() string { return "text" }

func (s *TextSurface) Print(ctx context.Context, doc *invoice.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := io.WriteString(s.w, s.render(doc))
	return err
}

func (s *TextSurface) render(doc *invoice.Document) string {
	var b strings.Builder
	rule := strings.Repeat("-", s.width)

	center := func(text string) {
		pad := (s.width - len(text)) / 2
		if pad < 0 {
			pad = 0
		}
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(text)
		b.WriteByte('\n')
	}
	twoCol := func(left, right string) {
		gap := s.width - len(left) - len(right)
		if gap < 1 {
			gap = 1
		}
		b.WriteString(left)
		b.WriteString(strings.Repeat(" ", gap))
		b.WriteString(right)
		b.WriteByte('\n')
	}

	center(doc.Seller.Name)
	if doc.Seller.GSTIN != "" {
		center("GSTIN: " + doc.Seller.GSTIN)
	}
	center("TAX INVOICE")
	b.WriteString(rule + "\n")

	twoCol("Invoice: "+doc.InvoiceNo, doc.Date.Format("02/01/2006"))
	if doc.Buyer.Name != "" {
		fmt.Fprintf(&b, "Customer: %s\n", doc.Buyer.Name)
	}
	b.WriteString(rule + "\n")

	for _, line := range doc.Lines {
		twoCol(
			fmt.Sprintf("%dx %s", line.Item.Quantity, line.Item.Name),
			invoice.FormatAmount(line.Item.TotalAmount),
		)
		if !line.CGST.IsZero() || !line.SGST.IsZero() {
			fmt.Fprintf(&b, "  CGST %s  SGST %s\n",
				invoice.FormatAmount(line.CGST), invoice.FormatAmount(line.SGST))
		}
	}

	b.WriteString(rule + "\n")
	twoCol("Taxable Value", invoice.FormatAmount(doc.TaxableTotal))
	twoCol("CGST", invoice.FormatAmount(doc.CGSTTotal))
	twoCol("SGST", invoice.FormatAmount(doc.SGSTTotal))
	if !doc.Charges.IsZero() {
		twoCol("Charges", invoice.FormatAmount(doc.Charges))
	}
	if !doc.Discount.IsZero() {
		twoCol("Discount", "-"+invoice.FormatAmount(doc.Discount))
	}
	twoCol("GRAND TOTAL", "Rs "+invoice.FormatAmount(doc.GrandTotal))
	b.WriteString(doc.AmountInWords + "\n")

	return b.String()
}
