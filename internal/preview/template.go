package preview

import (
	"encoding/base64"
	"html/template"

	"github.com/cellmart/pos-client/internal/invoice"
)

// lineView is one invoice row with display-formatted amounts.
type lineView struct {
	Name     string
	HSN      string
	IMEI     string
	Quantity int
	Taxable  string
	CGSTRate string
	CGST     string
	SGSTRate string
	SGST     string
	Total    string
}

type docView struct {
	InvoiceNo     string
	Date          string
	SellerName    string
	SellerAddress string
	SellerPhone   string
	SellerGSTIN   string
	BuyerName     string
	BuyerPhone    string
	BuyerGSTIN    string
	PlaceOfSupply string
	Lines         []lineView
	TaxableTotal  string
	CGSTTotal     string
	SGSTTotal     string
	Charges       string
	Discount      string
	GrandTotal    string
	AmountInWords string
	LogoDataURI   template.URL
}

func viewModel(doc *invoice.Document) docView {
	v := docView{
		InvoiceNo:     doc.InvoiceNo,
		Date:          doc.Date.Format("02/01/2006"),
		SellerName:    doc.Seller.Name,
		SellerAddress: doc.Seller.Address,
		SellerPhone:   doc.Seller.Phone,
		SellerGSTIN:   doc.Seller.GSTIN,
		BuyerName:     doc.Buyer.Name,
		BuyerPhone:    doc.Buyer.Phone,
		BuyerGSTIN:    doc.Buyer.GSTIN,
		PlaceOfSupply: doc.PlaceOfSupply,
		TaxableTotal:  invoice.FormatAmount(doc.TaxableTotal),
		CGSTTotal:     invoice.FormatAmount(doc.CGSTTotal),
		SGSTTotal:     invoice.FormatAmount(doc.SGSTTotal),
		Charges:       invoice.FormatAmount(doc.Charges),
		Discount:      invoice.FormatAmount(doc.Discount),
		GrandTotal:    invoice.FormatAmount(doc.GrandTotal),
		AmountInWords: doc.AmountInWords,
	}
	if len(doc.Logo) > 0 {
		v.LogoDataURI = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(doc.Logo))
	}
	for _, line := range doc.Lines {
		v.Lines = append(v.Lines, lineView{
			Name:     line.Item.Name,
			HSN:      line.Item.HSNCode,
			IMEI:     line.Item.IMEI,
			Quantity: line.Item.Quantity,
			Taxable:  invoice.FormatAmount(line.TaxableValue),
			CGSTRate: line.CGSTRate.String(),
			CGST:     invoice.FormatAmount(line.CGST),
			SGSTRate: line.SGSTRate.String(),
			SGST:     invoice.FormatAmount(line.SGST),
			Total:    invoice.FormatAmount(line.Item.TotalAmount),
		})
	}
	return v
}

var invoiceTemplate = template.Must(template.New("").Parse(`
{{define "invoice.html"}}<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice {{.Doc.InvoiceNo}}</title>
<style>
  body { font-family: monospace; max-width: 720px; margin: 2rem auto; }
  header { text-align: center; }
  table { width: 100%; border-collapse: collapse; margin: 1rem 0; }
  th, td { border: 1px solid #333; padding: 4px 8px; text-align: right; }
  th:first-child, td:first-child { text-align: left; }
  .totals td { border: none; }
  .grand { font-weight: bold; }
  @media print { body { margin: 0; } }
</style>
</head>
<body>
<header>
  {{if .Doc.LogoDataURI}}<img src="{{.Doc.LogoDataURI}}" alt="logo" height="64">{{end}}
  <h1>{{.Doc.SellerName}}</h1>
  {{if .Doc.SellerAddress}}<div>{{.Doc.SellerAddress}}</div>{{end}}
  {{if .Doc.SellerPhone}}<div>Ph: {{.Doc.SellerPhone}}</div>{{end}}
  {{if .Doc.SellerGSTIN}}<div>GSTIN: {{.Doc.SellerGSTIN}}</div>{{end}}
  <h2>TAX INVOICE</h2>
</header>

<div>Invoice: {{.Doc.InvoiceNo}} &nbsp; Date: {{.Doc.Date}}</div>
{{if .Doc.BuyerName}}<div>Customer: {{.Doc.BuyerName}}{{if .Doc.BuyerPhone}} ({{.Doc.BuyerPhone}}){{end}}</div>{{end}}
{{if .Doc.BuyerGSTIN}}<div>Customer GSTIN: {{.Doc.BuyerGSTIN}}</div>{{end}}
{{if .Doc.PlaceOfSupply}}<div>Place of Supply: {{.Doc.PlaceOfSupply}}</div>{{end}}

<table>
<tr><th>Item</th><th>Qty</th><th>Taxable</th><th>CGST</th><th>SGST</th><th>Total</th></tr>
{{range .Doc.Lines}}
<tr>
  <td>{{.Name}}{{if .HSN}}<br><small>HSN {{.HSN}}</small>{{end}}{{if .IMEI}}<br><small>IMEI {{.IMEI}}</small>{{end}}</td>
  <td>{{.Quantity}}</td>
  <td>{{.Taxable}}</td>
  <td>{{.CGST}} <small>@{{.CGSTRate}}%</small></td>
  <td>{{.SGST}} <small>@{{.SGSTRate}}%</small></td>
  <td>{{.Total}}</td>
</tr>
{{end}}
</table>

<table class="totals">
<tr><td>Taxable Value</td><td>{{.Doc.TaxableTotal}}</td></tr>
<tr><td>CGST</td><td>{{.Doc.CGSTTotal}}</td></tr>
<tr><td>SGST</td><td>{{.Doc.SGSTTotal}}</td></tr>
<tr><td>Charges</td><td>{{.Doc.Charges}}</td></tr>
<tr><td>Discount</td><td>-{{.Doc.Discount}}</td></tr>
<tr class="grand"><td>GRAND TOTAL</td><td>Rs {{.Doc.GrandTotal}}</td></tr>
</table>

<div>{{.Doc.AmountInWords}}</div>

{{if .Auto}}
<script>
(function () {
  var savedTitle = document.title;
  window.addEventListener("afterprint", function () {
    document.title = savedTitle;
    window.close();
  });
  setTimeout(function () {
    document.title = " ";
    window.print();
  }, {{.SettleMillis}});
})();
</script>
{{end}}
</body>
</html>{{end}}

{{define "not_found.html"}}<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Invoice not found</title></head>
<body>
<h1>Invoice not found</h1>
<p>No printable sale exists for id {{.ID}}.</p>
</body>
</html>{{end}}
`))
