package carousel

// PointerEnter pauses autoplay while the pointer hovers the carousel.
func (e *Engine) PointerEnter() {
	e.mutatePause(func() { e.pauses.add(PauseHover) })
}

func (e *Engine) PointerLeave() {
	e.mutatePause(func() { e.pauses.remove(PauseHover) })
}

// Tap toggles the tap pause.
func (e *Engine) Tap() {
	e.mutatePause(func() { e.pauses.toggle(PauseTapToggle) })
}

// SetVisible reports host visibility. Becoming visible re-applies the crop,
// since the viewport class may have changed while hidden. A swap already
// scheduled still completes while hidden.
func (e *Engine) SetVisible(visible bool) {
	e.mutatePause(func() {
		if !visible {
			e.pauses.add(PauseTabHidden)
			return
		}
		e.pauses.remove(PauseTabHidden)
		e.refreshCrop()
	})
}

// ViewportChanged re-evaluates the viewport class and re-crops both layers.
func (e *Engine) ViewportChanged() {
	if !e.Ready() {
		return
	}
	e.refreshCrop()
	e.notify()
}

// PointerDown starts a gesture. Autoplay is held until the gesture ends.
func (e *Engine) PointerDown(x, y float64) {
	if !e.Ready() {
		return
	}
	e.swipe.down(x, y)
	e.pauses.add(PauseGesture)
	e.notify()
}

// PointerMove reports whether the gesture is locked horizontal, in which case
// the host should suppress its default scrolling.
func (e *Engine) PointerMove(x, y float64) bool {
	if !e.Ready() {
		return false
	}
	return e.swipe.move(x, y)
}

// PointerUp ends a gesture. A committed swipe moves one slide; anything else
// changes no slide. The gesture pause is released either way.
func (e *Engine) PointerUp(x, y float64) GestureOutcome {
	if !e.Ready() || !e.swipe.active() {
		return GestureNone
	}
	out := e.swipe.up(x, y)
	switch out {
	case GestureSwipeForward:
		e.requestTransition(e.current+1, true)
	case GestureSwipeBackward:
		e.requestTransition(e.current-1, true)
	}
	e.pauses.remove(PauseGesture)
	e.notify()
	return out
}

// CancelPointer abandons a gesture without moving.
func (e *Engine) CancelPointer() {
	if !e.Ready() || !e.swipe.active() {
		return
	}
	e.swipe.tracking = false
	e.pauses.remove(PauseGesture)
	e.notify()
}

// SelectDot jumps straight to index and restarts the hold interval from now.
func (e *Engine) SelectDot(index int) {
	if !e.Ready() {
		return
	}
	e.requestTransition(index, true)
	e.clock.stop()
	e.resumeClock()
	e.notify()
}

func (e *Engine) mutatePause(fn func()) {
	if !e.Ready() {
		return
	}
	fn()
	e.notify()
}
