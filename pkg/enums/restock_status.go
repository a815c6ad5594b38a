package enums

import "fmt"

// RestockStatus describes the lifecycle of a restock request.
// A request moves from pending to fulfilled exactly once.
type RestockStatus string

const (
	RestockStatusPending   RestockStatus = "pending"
	RestockStatusFulfilled RestockStatus = "fulfilled"
)

var validRestockStatuses = []RestockStatus{
	RestockStatusPending,
	RestockStatusFulfilled,
}

// IsValid reports whether the value matches the canonical restock status enum.
func (s RestockStatus) IsValid() bool {
	for _, candidate := range validRestockStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseRestockStatus converts the raw string to RestockStatus.
func ParseRestockStatus(value string) (RestockStatus, error) {
	for _, candidate := range validRestockStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid restock status %q", value)
}
