package component

// Intent is a normalized snapshot of what a controller wants this tick.
// It is produced outside the core from keyboard, touch, scripts or the AI.
type Intent struct {
	Left   bool
	Right  bool
	Up     bool
	Down   bool
	Attack bool
	Block  bool
	Skill  bool
	Charge bool
}

// MoveX returns -1, 0 or +1. Opposite directions cancel out.
func (in Intent) MoveX() float64 {
	x := 0.0
	if in.Left {
		x--
	}
	if in.Right {
		x++
	}
	return x
}
