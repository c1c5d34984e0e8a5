package notify

import (
	"encoding/json"
	"fmt"

	"storefront/pkg/rabbitmq"
)

// NotificationQueue is the durable queue the email worker consumes.
const NotificationQueue = "notification_queue"

// AMQPGateway publishes notifications to RabbitMQ as JSON messages.
type AMQPGateway struct {
	client *rabbitmq.Client
	queue  string
}

// NewAMQPGateway creates a gateway publishing to the given queue. The
// queue is declared durable up front so messages survive a broker
// restart even before the worker first connects.
func NewAMQPGateway(client *rabbitmq.Client, queue string) (*AMQPGateway, error) {
	if err := client.DeclareQueue(queue); err != nil {
		return nil, fmt.Errorf("failed to declare notification queue: %w", err)
	}
	return &AMQPGateway{
		client: client,
		queue:  queue,
	}, nil
}

// Send publishes the notification.
func (g *AMQPGateway) Send(n Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}
	if err := g.client.Publish(g.queue, body); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}
