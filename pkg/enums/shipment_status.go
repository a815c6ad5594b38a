package enums

import "fmt"

// ShipmentStatus describes the delivery lifecycle of a shipment.
type ShipmentStatus string

const (
	ShipmentStatusPreparing ShipmentStatus = "preparing"
	ShipmentStatusShipped   ShipmentStatus = "shipped"
	ShipmentStatusDelivered ShipmentStatus = "delivered"
)

var validShipmentStatuses = []ShipmentStatus{
	ShipmentStatusPreparing,
	ShipmentStatusShipped,
	ShipmentStatusDelivered,
}

// IsValid reports whether the value matches the canonical shipment status enum.
func (s ShipmentStatus) IsValid() bool {
	for _, candidate := range validShipmentStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseShipmentStatus converts the raw string to ShipmentStatus.
func ParseShipmentStatus(value string) (ShipmentStatus, error) {
	for _, candidate := range validShipmentStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid shipment status %q", value)
}

// CanTransitionTo enforces the preparing -> shipped -> delivered order.
func (s ShipmentStatus) CanTransitionTo(next ShipmentStatus) bool {
	switch s {
	case ShipmentStatusPreparing:
		return next == ShipmentStatusShipped
	case ShipmentStatusShipped:
		return next == ShipmentStatusDelivered
	default:
		return false
	}
}
