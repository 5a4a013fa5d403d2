package carousel

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

var (
	ErrEmptyCatalog   = errors.New("carousel: empty catalog")
	ErrMissingElement = errors.New("carousel: missing render target")
)

// Phase is the transition orchestrator's current step.
type Phase int

const (
	PhaseIdle Phase = iota
	// PhaseFadeOut covers the stagger between the content fade-out and the
	// layer swap. Requests are dropped while in this phase.
	PhaseFadeOut
	// PhaseFadeIn is the window between the swap and the fade-in request on
	// the next frame. New requests are accepted again.
	PhaseFadeIn
)

func (p Phase) String() string {
	switch p {
	case PhaseFadeOut:
		return "fade-out"
	case PhaseFadeIn:
		return "fade-in"
	default:
		return "idle"
	}
}

// State is a read-only snapshot of an engine.
type State struct {
	Index       int
	ActiveLayer int
	InFlight    bool
	Phase       Phase
	Paused      PauseSet
	Autoplay    bool
	Mobile      bool
}

// Engine drives one carousel. It is not safe for concurrent use: every
// method, and every continuation it schedules, must run on the goroutine
// that advances its Scheduler.
type Engine struct {
	catalog Catalog
	surface Surface
	sched   Scheduler
	cfg     Config
	log     *zap.Logger
	err     error
	closed  bool
	halted  bool

	current     int
	activeLayer int
	layerSlide  [2]int
	inFlight    bool
	phase       Phase
	gen         uint64
	mobile      bool
	swapTimer   Timer

	clock  playbackClock
	pauses pauseArbiter
	swipe  swipeTracker
}

// New builds an engine and paints slide 0. When the catalog is empty or a
// render target is missing the engine is inert: every method returns without
// effect and Err reports why. Autoplay does not begin until Start.
func New(catalog Catalog, surface Surface, sched Scheduler, cfg Config) *Engine {
	cfg = cfg.withDefaults()
	e := &Engine{
		catalog: catalog,
		surface: surface,
		sched:   sched,
		cfg:     cfg,
		log:     cfg.Logger.Named("carousel"),
		halted:  true,
	}

	switch {
	case catalog.Len() == 0:
		e.err = ErrEmptyCatalog
	case sched == nil:
		e.err = fmt.Errorf("%w: scheduler", ErrMissingElement)
	default:
		if missing := surface.missing(); len(missing) > 0 {
			e.err = fmt.Errorf("%w: %s", ErrMissingElement, strings.Join(missing, ", "))
		}
	}
	if e.err != nil {
		e.log.Warn("carousel disabled", zap.Error(e.err))
		return e
	}

	e.clock = playbackClock{
		sched:    sched,
		hold:     cfg.HoldInterval,
		disabled: cfg.ReducedMotion,
		tick:     e.Advance,
	}
	e.pauses = pauseArbiter{
		pause:  func() { e.clock.stop() },
		resume: e.resumeClock,
	}
	e.swipe = swipeTracker{lock: cfg.SwipeLock, commit: cfg.SwipeCommit}
	e.mobile = e.isMobile()

	e.paintInitial()
	if cfg.ReducedMotion {
		e.pauses.add(PauseReducedMotion)
	}
	e.log.Debug("carousel ready",
		zap.Int("slides", catalog.Len()),
		zap.Bool("reduced_motion", cfg.ReducedMotion),
		zap.Duration("hold", cfg.HoldInterval),
	)
	return e
}

// Err reports why the engine is inert, or nil.
func (e *Engine) Err() error {
	return e.err
}

// Ready reports whether the engine accepts operations.
func (e *Engine) Ready() bool {
	return e != nil && e.err == nil && !e.closed
}

// Catalog returns the slides the engine was built from.
func (e *Engine) Catalog() Catalog {
	return e.catalog
}

// Config returns the effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Current returns the slide currently shown.
func (e *Engine) Current() Slide {
	return e.catalog.Get(e.current)
}

func (e *Engine) State() State {
	return State{
		Index:       e.current,
		ActiveLayer: e.activeLayer,
		InFlight:    e.inFlight,
		Phase:       e.phase,
		Paused:      e.pauses.sources,
		Autoplay:    e.clock.active(),
		Mobile:      e.mobile,
	}
}

// Start enables autoplay. The timer only runs while no pause source is held.
func (e *Engine) Start() {
	if !e.Ready() {
		return
	}
	e.halted = false
	e.resumeClock()
	e.notify()
}

// Stop disables autoplay until the next Start. Pause sources clearing in the
// meantime do not restart it.
func (e *Engine) Stop() {
	if !e.Ready() {
		return
	}
	e.halted = true
	e.clock.stop()
	e.notify()
}

// Advance moves one slide forward. It is the autoplay tick.
func (e *Engine) Advance() {
	e.requestTransition(e.current+1, false)
}

// Retreat moves one slide back.
func (e *Engine) Retreat() {
	e.requestTransition(e.current-1, false)
}

// GoTo jumps to index (taken modulo the catalog length) as a user action.
func (e *Engine) GoTo(index int) {
	e.requestTransition(index, true)
}

// Close clears the autoplay timer and any pending swap. The engine is inert
// afterwards.
func (e *Engine) Close() {
	if !e.Ready() {
		return
	}
	e.clock.stop()
	if e.swapTimer != nil {
		e.swapTimer.Stop()
		e.swapTimer = nil
	}
	e.inFlight = false
	e.phase = PhaseIdle
	e.closed = true
	e.log.Debug("carousel closed")
}

func (e *Engine) resumeClock() {
	if e.halted || e.closed || !e.pauses.running() {
		return
	}
	e.clock.start()
}

func (e *Engine) isMobile() bool {
	return e.cfg.IsMobile != nil && e.cfg.IsMobile()
}

func (e *Engine) paintInitial() {
	s0 := e.catalog.Get(0)
	crop := s0.Crop(e.mobile)
	for _, l := range e.surface.Layers {
		l.SetImage(s0.ImageRef, crop)
	}
	e.surface.Layers[0].SetActive(true)
	e.surface.Layers[1].SetActive(false)
	e.surface.Indicators.Render(e.catalog.Len(), 0, e.SelectDot)
	e.surface.Content.SetText(s0.Title, s0.Caption)
	e.surface.Content.FadeIn()
}

func (e *Engine) notify() {
	if e.cfg.OnChange != nil {
		e.cfg.OnChange(e.State())
	}
}
