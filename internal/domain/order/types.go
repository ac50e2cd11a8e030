package order

type Status string

const (
	StatusPending       Status = "pending"
	StatusPaid          Status = "paid"
	StatusProcessing    Status = "processing"
	StatusShipped       Status = "shipped"
	StatusDelivered     Status = "delivered"
	StatusCancelled     Status = "cancelled"
	StatusPaymentFailed Status = "payment_failed"
)

var transitions = map[Status][]Status{
	StatusPending:    {StatusPaid, StatusCancelled, StatusPaymentFailed},
	StatusPaid:       {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusProcessing, StatusShipped,
		StatusDelivered, StatusCancelled, StatusPaymentFailed:
		return true
	default:
		return false
	}
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports statuses with no outgoing transition.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// HoldsReservation is true while stock and coupon usage are still claimed.
func (s Status) HoldsReservation() bool {
	return s != StatusCancelled && s != StatusPaymentFailed
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
