package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// BlocksAvailability is true only for confirmed stays; pending bookings may overlap until confirmed.
func (s Status) BlocksAvailability() bool {
	return s == StatusConfirmed
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
