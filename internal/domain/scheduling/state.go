package scheduling

// State is a booking's lifecycle status. The string values are the
// persisted codes.
type State string

const (
	StateNotConfirmed State = "NCNF"
	StateConfirmed    State = "CONF"
	StateExecuted     State = "EXEC"
)

func InitialState() State {
	return StateNotConfirmed
}

func (s State) Label() string {
	switch s {
	case StateNotConfirmed:
		return "Not confirmed"
	case StateConfirmed:
		return "Confirmed"
	case StateExecuted:
		return "Executed"
	default:
		return string(s)
	}
}

func CanConfirm(current State) error {
	if current != StateNotConfirmed {
		return ErrInvalidState
	}
	return nil
}

func CanExecute(current State) error {
	if current != StateConfirmed {
		return ErrInvalidState
	}
	return nil
}
