package carousel

import "go.uber.org/zap"

// requestTransition runs the crossfade toward target. It reports whether the
// request was accepted; a request made while another transition is between
// its fade-out and its swap is dropped, never queued.
func (e *Engine) requestTransition(target int, userInitiated bool) bool {
	if !e.Ready() || e.catalog.Len() < 2 {
		return false
	}
	if e.inFlight {
		e.log.Debug("transition dropped",
			zap.Int("target", target),
			zap.Int("current", e.current),
			zap.Bool("user", userInitiated),
		)
		return false
	}

	target = e.catalog.wrap(target)
	e.inFlight = true
	e.gen++
	if userInitiated {
		e.surface.Indicators.Highlight(target)
	}

	if e.cfg.ReducedMotion {
		e.swap(target)
		e.inFlight = false
		e.phase = PhaseIdle
		e.notify()
		return true
	}

	e.phase = PhaseFadeOut
	e.surface.Content.FadeOut()
	e.notify()

	gen := e.gen
	e.swapTimer = e.sched.AfterFunc(e.cfg.Stagger, func() {
		e.swapTimer = nil
		if e.closed {
			return
		}
		e.swap(target)
		e.inFlight = false
		e.phase = PhaseFadeIn
		e.notify()

		// The text written by swap must be in place before it fades back in.
		e.sched.NextFrame(func() {
			if e.closed || e.gen != gen {
				return
			}
			e.surface.Content.FadeIn()
			e.phase = PhaseIdle
			e.notify()
		})
	})
	return true
}

// swap writes target into the inactive layer and flips the active one.
func (e *Engine) swap(target int) {
	slide := e.catalog.Get(target)
	e.mobile = e.isMobile()

	next := 1 - e.activeLayer
	e.surface.Layers[next].SetImage(slide.ImageRef, slide.Crop(e.mobile))
	e.surface.Layers[next].SetActive(true)
	e.surface.Layers[e.activeLayer].SetActive(false)
	e.activeLayer = next
	e.layerSlide[next] = target

	e.current = target
	e.surface.Content.SetText(slide.Title, slide.Caption)
	e.surface.Indicators.Highlight(target)

	e.log.Debug("slide shown", zap.Int("index", target), zap.Int("layer", next))
}

// refreshCrop re-applies each layer's crop for the current viewport class.
func (e *Engine) refreshCrop() {
	e.mobile = e.isMobile()
	for i, l := range e.surface.Layers {
		l.SetCrop(e.catalog.Get(e.layerSlide[i]).Crop(e.mobile))
	}
}
