package carousel

import "math"

// GestureOutcome classifies a finished pointer sequence.
type GestureOutcome int

const (
	// GestureNone means no gesture was tracked or it was neither a swipe nor
	// a tap (for example a vertical drag).
	GestureNone GestureOutcome = iota
	// GestureTap is a press and release that barely moved.
	GestureTap
	// GestureSwipeForward is a committed drag to the left.
	GestureSwipeForward
	// GestureSwipeBackward is a committed drag to the right.
	GestureSwipeBackward
)

func (o GestureOutcome) String() string {
	switch o {
	case GestureTap:
		return "tap"
	case GestureSwipeForward:
		return "swipe-forward"
	case GestureSwipeBackward:
		return "swipe-backward"
	default:
		return "none"
	}
}

type swipeTracker struct {
	lock   float64
	commit float64

	tracking bool
	locked   bool
	x0, y0   float64
}

func (t *swipeTracker) down(x, y float64) {
	t.tracking = true
	t.locked = false
	t.x0, t.y0 = x, y
}

// move reports whether default scrolling should be suppressed for the rest
// of the sequence.
func (t *swipeTracker) move(x, y float64) bool {
	if !t.tracking {
		return false
	}
	dx := math.Abs(x - t.x0)
	dy := math.Abs(y - t.y0)
	if dx > dy && dx > t.lock {
		t.locked = true
	}
	return t.locked
}

func (t *swipeTracker) up(x, y float64) GestureOutcome {
	if !t.tracking {
		return GestureNone
	}
	t.tracking = false
	dx := x - t.x0
	dy := y - t.y0
	adx, ady := math.Abs(dx), math.Abs(dy)

	if adx > ady && adx > t.commit {
		if dx < 0 {
			return GestureSwipeForward
		}
		return GestureSwipeBackward
	}
	if !t.locked && adx <= t.lock && ady <= t.lock {
		return GestureTap
	}
	return GestureNone
}

func (t *swipeTracker) active() bool {
	return t.tracking
}
