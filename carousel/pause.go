package carousel

import "strings"

// PauseReason is one independent reason autoplay is suspended.
type PauseReason uint8

const (
	PauseHover PauseReason = 1 << iota
	PauseTapToggle
	PauseTabHidden
	PauseReducedMotion
	// PauseGesture is held while a pointer gesture is in progress.
	PauseGesture
)

var pauseReasonNames = []struct {
	reason PauseReason
	name   string
}{
	{PauseHover, "hover"},
	{PauseTapToggle, "tap"},
	{PauseTabHidden, "hidden"},
	{PauseReducedMotion, "reduced-motion"},
	{PauseGesture, "gesture"},
}

func (r PauseReason) String() string {
	for _, n := range pauseReasonNames {
		if n.reason == r {
			return n.name
		}
	}
	return "unknown"
}

// PauseSet is a set of pause reasons. The zero value is empty.
type PauseSet uint8

func (s PauseSet) Has(r PauseReason) bool         { return s&PauseSet(r) != 0 }
func (s PauseSet) With(r PauseReason) PauseSet    { return s | PauseSet(r) }
func (s PauseSet) Without(r PauseReason) PauseSet { return s &^ PauseSet(r) }
func (s PauseSet) Empty() bool                    { return s == 0 }

func (s PauseSet) String() string {
	if s.Empty() {
		return "none"
	}
	parts := make([]string, 0, len(pauseReasonNames))
	for _, n := range pauseReasonNames {
		if s.Has(n.reason) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// pauseArbiter folds every pause source into one running/paused decision.
// After each mutation it calls pause when any source is held and resume when
// none is; both callbacks must be idempotent.
type pauseArbiter struct {
	sources PauseSet
	pause   func()
	resume  func()
}

func (a *pauseArbiter) add(r PauseReason) {
	a.sources = a.sources.With(r)
	a.apply()
}

func (a *pauseArbiter) remove(r PauseReason) {
	a.sources = a.sources.Without(r)
	a.apply()
}

func (a *pauseArbiter) toggle(r PauseReason) {
	if a.sources.Has(r) {
		a.remove(r)
		return
	}
	a.add(r)
}

func (a *pauseArbiter) running() bool {
	return a.sources.Empty()
}

func (a *pauseArbiter) apply() {
	if !a.sources.Empty() {
		if a.pause != nil {
			a.pause()
		}
		return
	}
	if a.resume != nil {
		a.resume()
	}
}
