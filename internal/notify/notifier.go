package notify

import (
	"context"
	"fmt"

	"github.com/stylelane/stylelane-backend/pkg/logger"
)

// Publisher is the transport the notifier publishes through.
type Publisher interface {
	Publish(ctx context.Context, subject, message string) error
	Enabled() bool
}

// Notifier emits operational alerts for inventory events. Delivery is
// best effort: failures are logged and never surfaced to the caller.
type Notifier interface {
	LowStock(ctx context.Context, productName, storeID string, quantity, threshold int)
	RestockRequested(ctx context.Context, productName, storeID string, quantity int)
	RestockFulfilled(ctx context.Context, productName, storeID string, quantity int)
	ShipmentStatusChanged(ctx context.Context, shipmentID, status string)
}

type notifier struct {
	pub  Publisher
	logg *logger.Logger
}

// NewNotifier builds a Notifier over the given publisher.
func NewNotifier(pub Publisher, logg *logger.Logger) (Notifier, error) {
	if pub == nil {
		return nil, fmt.Errorf("publisher is required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &notifier{pub: pub, logg: logg}, nil
}

func (n *notifier) LowStock(ctx context.Context, productName, storeID string, quantity, threshold int) {
	subject := "Low Stock Alert"
	message := fmt.Sprintf(
		"Product %q at store %s is low on stock: %d remaining (threshold %d).",
		productName, storeID, quantity, threshold,
	)
	n.send(ctx, subject, message)
}

func (n *notifier) RestockRequested(ctx context.Context, productName, storeID string, quantity int) {
	subject := "Restock Requested"
	message := fmt.Sprintf(
		"Restock requested for product %q at store %s: %d units.",
		productName, storeID, quantity,
	)
	n.send(ctx, subject, message)
}

func (n *notifier) RestockFulfilled(ctx context.Context, productName, storeID string, quantity int) {
	subject := "Restock Fulfilled"
	message := fmt.Sprintf(
		"Restock fulfilled for product %q at store %s: %d units added to inventory.",
		productName, storeID, quantity,
	)
	n.send(ctx, subject, message)
}

func (n *notifier) ShipmentStatusChanged(ctx context.Context, shipmentID, status string) {
	subject := "Shipment Update"
	message := fmt.Sprintf("Shipment %s is now %s.", shipmentID, status)
	n.send(ctx, subject, message)
}

func (n *notifier) send(ctx context.Context, subject, message string) {
	if !n.pub.Enabled() {
		return
	}
	if err := n.pub.Publish(ctx, subject, message); err != nil {
		ctx = n.logg.WithField(ctx, "subject", subject)
		n.logg.Error(ctx, "failed to publish notification", err)
	}
}
