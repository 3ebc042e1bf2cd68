package printsurface

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellmart/pos-client/internal/domain/entity"
	"github.com/cellmart/pos-client/internal/invoice"
)

type captureTransport struct {
	sent [][]byte
}

func (t *captureTransport) Send(data []byte) error {
	t.sent = append(t.sent, data)
	return nil
}

func (t *captureTransport) Available() bool { return true }

func decimalFromString(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testDocument() *invoice.Document {
	sale := &entity.Sale{
		ID:            7,
		InvoiceNo:     "INV-2026-0042",
		Date:          time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		ShopName:      "CellMart Andheri",
		CustomerName:  "Priya Sharma",
		PlaceOfSupply: "Maharashtra",
		GrandTotal:    decimalFromString("118.00"),
		Items: []entity.SaleItem{
			{
				Name:        "Galaxy A15",
				HSNCode:     "8517",
				IMEI:        "356938035643809",
				Quantity:    1,
				GSTRate:     decimalFromString("18"),
				GSTAmount:   decimalFromString("18.00"),
				TotalAmount: decimalFromString("118.00"),
			},
		},
	}
	profile := &entity.CompanyProfile{Name: "CellMart Pvt Ltd", GSTIN: "27AAAAA0000A1Z5"}
	return invoice.BuildDocument(sale, profile, nil)
}

func TestThermalSurfacePrint(t *testing.T) {
	transport := &captureTransport{}
	surface := NewThermalSurface(transport, 48)

	assert.Equal(t, "thermal", surface.Name())
	require.NoError(t, surface.Print(context.Background(), testDocument()))
	require.Len(t, transport.sent, 1)

	out := string(transport.sent[0])
	assert.Contains(t, out, "CellMart Pvt Ltd")
	assert.Contains(t, out, "TAX INVOICE")
	assert.Contains(t, out, "INV-2026-0042")
	assert.Contains(t, out, "IMEI: 356938035643809")
	assert.Contains(t, out, "CGST @9%: 9.00")
	assert.Contains(t, out, "SGST @9%: 9.00")
	assert.Contains(t, out, "Rs 118.00")
	assert.Contains(t, out, "Rupees One Hundred Eighteen Only")
	// Stream ends with feed + cut.
	assert.True(t, bytes.HasSuffix(transport.sent[0], []byte{0x1D, 'V', 0x00}))
}

func TestThermalSurfaceCancelledContext(t *testing.T) {
	transport := &captureTransport{}
	surface := NewThermalSurface(transport, 48)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := surface.Print(ctx, testDocument())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, transport.sent)
}

func TestTextSurfacePrint(t *testing.T) {
	var buf bytes.Buffer
	surface := NewTextSurface(&buf, 48)

	assert.Equal(t, "text", surface.Name())
	require.NoError(t, surface.Print(context.Background(), testDocument()))

	out := buf.String()
	assert.Contains(t, out, "CellMart Pvt Ltd")
	assert.Contains(t, out, "Customer: Priya Sharma")
	assert.Contains(t, out, "GRAND TOTAL")
	assert.Contains(t, out, "Rupees One Hundred Eighteen Only")

	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.LessOrEqual(t, len(line), 48, "line overflows width: %q", line)
	}
}
