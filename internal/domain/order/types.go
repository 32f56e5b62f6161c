package order

type Status string

const (
	StatusInKitchen Status = "in_kitchen"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusInKitchen, StatusReady, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// Terminal statuses release the order's beeper and accept no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo encodes the order lifecycle:
// in_kitchen -> ready -> delivered, with cancellation allowed from either
// active state. Cancelling a ready order is permitted (register-side call);
// the kitchen flow itself only ever moves in_kitchen -> ready.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusInKitchen:
		return target == StatusReady || target == StatusCancelled
	case StatusReady:
		return target == StatusDelivered || target == StatusCancelled
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
