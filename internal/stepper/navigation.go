package stepper

// Direction is the way a navigation intent points.
type Direction int

const (
	DirectionBack Direction = iota
	DirectionNext
)

func (d Direction) String() string {
	if d == DirectionNext {
		return "next"
	}
	return "back"
}

// NavigationIntent is what a presenter reports when the user asks to move.
// Presenters emit intents; they never act on them.
type NavigationIntent struct {
	Direction Direction
	FromIndex int
}

// Target is the index the intent would land on in a sequence of total steps.
func (n NavigationIntent) Target(total int) int {
	return Advance(n.FromIndex, n.Direction, total)
}

// Advance applies one transition of the progression state machine. Both
// directions are no-ops at their boundary, and from is clamped first.
func Advance(from int, dir Direction, total int) int {
	from = clamp(from, total)
	switch dir {
	case DirectionNext:
		if from < total-1 {
			return from + 1
		}
	case DirectionBack:
		if from > 0 {
			return from - 1
		}
	}
	return from
}

// Boundaries reports which navigation directions are blocked at activeIndex.
// A sequence of one step has both blocked.
func Boundaries(activeIndex, total int) (backDisabled, nextDisabled bool) {
	if total < 1 {
		total = 1
	}
	active := clamp(activeIndex, total)
	return active == 0, active == total-1
}

// ProgressFraction is the filled share of a progress indicator:
// activeIndex / (total-1), clamped, and exactly 1.0 for a single step.
func ProgressFraction(activeIndex, total int) float64 {
	if total <= 1 {
		return 1.0
	}
	return float64(clamp(activeIndex, total)) / float64(total-1)
}

// ClampIndex bounds index to [0, total-1]. A total below one is treated
// as a single step.
func ClampIndex(index, total int) int {
	if total < 1 {
		total = 1
	}
	return clamp(index, total)
}
