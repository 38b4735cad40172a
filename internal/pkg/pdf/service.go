// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/inquiry"
)

// Service generates printable order sheets for staff fulfillment
type Service struct {
	config *config.Config
	tmpl   *template.Template
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	tmpl := template.New("order_sheet").Funcs(template.FuncMap{
		"divCents": func(cents int64) float64 { return float64(cents) / 100 },
	})
	return &Service{
		config: cfg,
		tmpl:   template.Must(tmpl.Parse(orderSheetTemplate)),
	}
}

// OrderSheetData represents the data passed to the order sheet template
type OrderSheetData struct {
	Inquiry     *inquiry.Inquiry
	StoreName   string
	StoreEmail  string
	StorePhone  string
	GeneratedAt string
}

// GenerateOrderSheet renders an inquiry as a PDF staff can print and
// work from while fulfilling the order.
func (s *Service) GenerateOrderSheet(inq *inquiry.Inquiry) (*bytes.Buffer, error) {
	data := OrderSheetData{
		Inquiry:     inq,
		StoreName:   s.config.App.StoreName,
		StoreEmail:  s.config.App.StoreEmail,
		StorePhone:  s.config.App.StorePhone,
		GeneratedAt: time.Now().Format("January 2, 2006 15:04"),
	}

	var html bytes.Buffer
	if err := s.tmpl.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("failed to render order sheet: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(html.Bytes()))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// Order sheet HTML template
const orderSheetTemplate = `
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<title>Order Sheet {{.Inquiry.Reference}}</title>
	<style>
		body { font-family: Arial, sans-serif; margin: 0; padding: 24px; color: #222; }
		h1 { font-size: 20px; margin-bottom: 4px; }
		.meta { color: #666; font-size: 12px; margin-bottom: 20px; }
		.customer { margin-bottom: 20px; }
		table { width: 100%; border-collapse: collapse; margin-bottom: 20px; }
		th, td { border: 1px solid #ccc; padding: 8px; text-align: left; font-size: 13px; }
		th { background: #f4f4f4; }
		.total { font-size: 16px; font-weight: bold; text-align: right; }
		.status { display: inline-block; padding: 2px 8px; border: 1px solid #999; border-radius: 3px; }
	</style>
</head>
<body>
	<h1>{{.StoreName}} — Order Sheet {{.Inquiry.Reference}}</h1>
	<div class="meta">
		Generated {{.GeneratedAt}} · Status: <span class="status">{{.Inquiry.Status}}</span>
	</div>

	<div class="customer">
		<strong>{{.Inquiry.CustomerName}}</strong><br>
		{{.Inquiry.Email}} · {{.Inquiry.Phone}}<br>
		{{if .Inquiry.Address}}{{.Inquiry.Address}}<br>{{end}}
		{{if .Inquiry.Message}}<em>"{{.Inquiry.Message}}"</em>{{end}}
	</div>

	<table>
		<tr>
			<th>Product</th><th>Size</th><th>Color</th><th>Qty</th><th>Unit Price</th><th>Subtotal</th>
		</tr>
		{{range .Inquiry.Lines}}
		<tr>
			<td>{{.ProductName}}</td>
			<td>{{.Size}}</td>
			<td>{{.Color}}</td>
			<td>{{.Quantity}}</td>
			<td>{{printf "%.2f" (divCents .UnitPrice)}}</td>
			<td>{{printf "%.2f" (divCents .Subtotal)}}</td>
		</tr>
		{{end}}
	</table>

	<div class="total">Total: {{printf "%.2f" (divCents .Inquiry.TotalAmount)}} ({{.Inquiry.ItemCount}} items)</div>

	<p>{{.StoreEmail}}{{if .StorePhone}} · {{.StorePhone}}{{end}}</p>
</body>
</html>
`
