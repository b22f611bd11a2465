package store

// State is the workflow statecode enumeration of the remote schema.
type State int

const (
	StateDraft State = iota
	StateActivated
	StateSuspended
)

var stateNames = [...]string{"draft", "activated", "suspended"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// EnumIndex returns the enum index of a State.
func (s State) EnumIndex() int {
	return int(s)
}

// Valid reports whether the state is a known remote value.
func (s State) Valid() bool {
	return s >= 0 && int(s) < len(stateNames)
}
