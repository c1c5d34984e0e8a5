package services

import (
	"log"

	"storefront/internal/models"
	"storefront/internal/notify"
)

// OrderNotifier renders and sends customer notifications for order
// events. Every failure is logged and swallowed: the order mutation a
// notification belongs to has already committed and must never be
// blocked or rolled back by mail problems.
type OrderNotifier struct {
	gateway   notify.Gateway
	templates *notify.TemplateRenderer
	receipts  *notify.ReceiptRenderer
}

// NewOrderNotifier creates a new OrderNotifier over the gateway.
func NewOrderNotifier(gateway notify.Gateway) *OrderNotifier {
	return &OrderNotifier{
		gateway:   gateway,
		templates: notify.NewTemplateRenderer(),
		receipts:  notify.NewReceiptRenderer(),
	}
}

// Dispatch sends the status notification for the order, attaching a
// receipt when the order was delivered. Best-effort only.
func (n *OrderNotifier) Dispatch(order models.Order, user models.User, status models.OrderStatus) {
	body, err := n.templates.Render(&order, &user, status)
	if err != nil {
		log.Printf("Warning: failed to render %s notification for order %s: %v", status, order.ID, err)
		return
	}

	notification := notify.Notification{
		Recipient: user.Email,
		Subject:   n.templates.Subject(&order, status),
		HTMLBody:  body,
	}

	if status == models.StatusDelivered {
		receipt, err := n.receipts.Render(&order, &user)
		if err != nil {
			// Send the notification without the receipt rather than
			// dropping it entirely.
			log.Printf("Warning: failed to render receipt for order %s: %v", order.ID, err)
		} else {
			notification.Attachments = append(notification.Attachments, receipt)
		}
	}

	if err := n.gateway.Send(notification); err != nil {
		log.Printf("Warning: failed to send %s notification for order %s: %v", status, order.ID, err)
	}
}
