package notify

import (
	"bytes"
	"fmt"
	"html/template"

	"storefront/internal/models"
)

const receiptTemplateText = `<html>
<body>
<h1>Receipt</h1>
<p>Order {{.Order.ID}}<br>
Customer: {{.User.Username}} ({{.User.Email}})<br>
Date: {{.Order.CreatedAt.Format "02 Jan 2006 15:04"}}{{if .Order.DeliveredAt}}<br>
Delivered: {{.Order.DeliveredAt.Format "02 Jan 2006 15:04"}}{{end}}</p>
<table border="1" cellpadding="4">
<tr><th>Item</th><th>Qty</th><th>Unit price</th><th>Subtotal</th></tr>
{{range .Order.LineItems}}<tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>{{printf "%.2f" .UnitPrice}}</td><td>{{printf "%.2f" (subtotal .)}}</td></tr>
{{end}}</table>
<p>Items: {{printf "%.2f" .Order.ItemsPrice}}<br>
Tax: {{printf "%.2f" .Order.TaxPrice}}<br>
Shipping: {{printf "%.2f" .Order.ShippingPrice}}<br>
<strong>Total: {{printf "%.2f" .Order.TotalPrice}}</strong></p>
</body>
</html>`

// ReceiptRenderer renders the receipt document attached to the
// Delivered notification.
type ReceiptRenderer struct {
	tmpl *template.Template
}

// NewReceiptRenderer creates a new ReceiptRenderer.
func NewReceiptRenderer() *ReceiptRenderer {
	tmpl := template.New("receipt").Funcs(template.FuncMap{
		"subtotal": func(li models.OrderLineItem) float64 {
			return li.UnitPrice * float64(li.Quantity)
		},
	})
	return &ReceiptRenderer{
		tmpl: template.Must(tmpl.Parse(receiptTemplateText)),
	}
}

// Render produces the receipt as an attachment.
func (r *ReceiptRenderer) Render(order *models.Order, user *models.User) (Attachment, error) {
	var buf bytes.Buffer
	data := struct {
		Order *models.Order
		User  *models.User
	}{
		Order: order,
		User:  user,
	}
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return Attachment{}, fmt.Errorf("failed to render receipt: %w", err)
	}
	return Attachment{
		Filename:    fmt.Sprintf("receipt-%s.html", order.ID),
		ContentType: "text/html",
		Data:        buf.Bytes(),
	}, nil
}
