package quiz

// OptionState is how a single answer option renders.
type OptionState int

const (
	// OptionNeutral is selectable; the question is not answered yet.
	OptionNeutral OptionState = iota
	// OptionCorrect marks the right answer once the question is answered.
	OptionCorrect
	// OptionIncorrect marks the user's wrong pick.
	OptionIncorrect
	// OptionDimmed is any other option after answering. Not selectable.
	OptionDimmed
)

func (s OptionState) String() string {
	switch s {
	case OptionNeutral:
		return "neutral"
	case OptionCorrect:
		return "correct"
	case OptionIncorrect:
		return "incorrect"
	case OptionDimmed:
		return "dimmed"
	default:
		return "unknown"
	}
}

// Selectable reports whether an option in this state accepts input.
func (s OptionState) Selectable() bool {
	return s == OptionNeutral
}

// DeriveOptionStates computes the render state of n options from the
// answer state. It holds no state of its own.
func DeriveOptionStates(n, correct, selected int, answered bool) []OptionState {
	states := make([]OptionState, n)
	if !answered {
		return states
	}
	for i := range states {
		switch {
		case i == correct:
			states[i] = OptionCorrect
		case i == selected:
			states[i] = OptionIncorrect
		default:
			states[i] = OptionDimmed
		}
	}
	return states
}

// OptionLabel returns the letter shown next to option i ("A".."D").
func OptionLabel(i int) string {
	return string(rune('A' + i))
}
