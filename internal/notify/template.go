package notify

import (
	"bytes"
	"fmt"
	"html/template"

	"storefront/internal/models"
)

// statusLines maps each order status to the headline of its
// notification body.
var statusLines = map[models.OrderStatus]string{
	models.StatusProcessing:     "We have received your order and are processing it.",
	models.StatusAccepted:       "Your order has been accepted and is being prepared.",
	models.StatusOutForDelivery: "Your order is out for delivery.",
	models.StatusDelivered:      "Your order has been delivered. Thank you for shopping with us!",
	models.StatusCancelled:      "Your order has been cancelled.",
}

const statusTemplateText = `<html>
<body>
<p>Hi {{.Username}},</p>
<p>{{.StatusLine}}</p>
<p>Order <strong>{{.Order.ID}}</strong> placed on {{.Order.CreatedAt.Format "02 Jan 2006"}}:</p>
<table border="1" cellpadding="4">
<tr><th>Item</th><th>Qty</th><th>Unit price</th></tr>
{{range .Order.LineItems}}<tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>{{printf "%.2f" .UnitPrice}}</td></tr>
{{end}}</table>
<p>Items: {{printf "%.2f" .Order.ItemsPrice}}<br>
Tax: {{printf "%.2f" .Order.TaxPrice}}<br>
Shipping: {{printf "%.2f" .Order.ShippingPrice}}<br>
<strong>Total: {{printf "%.2f" .Order.TotalPrice}}</strong></p>
<p>Shipping to: {{.Order.ShippingInfo.Address}}, {{.Order.ShippingInfo.City}} {{.Order.ShippingInfo.PostalCode}}, {{.Order.ShippingInfo.Country}}</p>
</body>
</html>`

// TemplateRenderer renders status-specific notification bodies.
type TemplateRenderer struct {
	tmpl *template.Template
}

// NewTemplateRenderer creates a new TemplateRenderer.
func NewTemplateRenderer() *TemplateRenderer {
	return &TemplateRenderer{
		tmpl: template.Must(template.New("status").Parse(statusTemplateText)),
	}
}

// Render produces the HTML body for a status notification.
func (r *TemplateRenderer) Render(order *models.Order, user *models.User, status models.OrderStatus) (string, error) {
	line, ok := statusLines[status]
	if !ok {
		return "", fmt.Errorf("no notification template for status %q", status)
	}
	var buf bytes.Buffer
	data := struct {
		Username   string
		StatusLine string
		Order      *models.Order
	}{
		Username:   user.Username,
		StatusLine: line,
		Order:      order,
	}
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render status template: %w", err)
	}
	return buf.String(), nil
}

// Subject produces the notification subject for a status change.
func (r *TemplateRenderer) Subject(order *models.Order, status models.OrderStatus) string {
	return fmt.Sprintf("Your order %s is now %s", order.ID, status)
}
