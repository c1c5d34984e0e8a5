package notify

import "log"

// LogGateway is a Gateway that only logs. Used in development when no
// broker is reachable, so checkouts and transitions still work.
type LogGateway struct{}

// Send logs the notification instead of delivering it.
func (LogGateway) Send(n Notification) error {
	log.Printf("notification (not delivered): to=%s subject=%q attachments=%d", n.Recipient, n.Subject, len(n.Attachments))
	return nil
}
