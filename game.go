package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/herocarousel/carousel"
	"github.com/milk9111/herocarousel/catalog"
	"github.com/milk9111/herocarousel/render"
	"go.uber.org/zap"
	"golang.design/x/clipboard"
)

const (
	mobileBreakpoint = 768
	preloadWorkers   = 4
)

type viewerOptions struct {
	DeckPath      string
	Debug         bool
	ReducedMotion bool
	Watch         bool
	SnapshotDir   string
}

// Game hosts one carousel engine in an ebiten window and translates window
// input into engine events.
type Game struct {
	opts    viewerOptions
	logger  *zap.Logger
	frames  int
	watcher *catalog.Watcher

	sched  *carousel.FrameScheduler
	engine *carousel.Engine
	stage  *stage
	hud    *hud

	width, height int
	mobile        bool
	focused       bool
	hovering      bool
	touchSeen     bool
	mouseDown     bool
	touching      bool
	touchID       ebiten.TouchID
	touchIDs      []ebiten.TouchID
	snapshot      bool
	clipboardOK   bool

	reloaded     chan deckLoad
	cancelReload context.CancelFunc
}

func NewGame(opts viewerOptions, logger *zap.Logger) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Game{
		opts:    opts,
		logger:  logger,
		focused: true,
	}

	if err := g.install(loadDeck(context.Background(), opts.DeckPath, false)); err != nil {
		return nil, err
	}

	if opts.Watch && opts.DeckPath != "" {
		w, err := catalog.NewWatcher(opts.DeckPath)
		if err != nil {
			logger.Warn("deck watch disabled", zap.Error(err))
		} else {
			g.watcher = w
		}
	}

	if err := clipboard.Init(); err != nil {
		logger.Debug("clipboard unavailable", zap.Error(err))
	} else {
		g.clipboardOK = true
	}
	return g, nil
}

// deckLoad is a parsed deck with its images decoded, ready to install.
type deckLoad struct {
	path   string
	deck   *catalog.DeckSpec
	slides carousel.Catalog
	refs   []string
	failed map[string]error
	err    error
}

// loadDeck parses the deck and decodes its slide images. It touches no Game
// state, so reloads run it off the frame loop. With fresh set, images already
// cached are decoded again so edited files show up.
func loadDeck(ctx context.Context, path string, fresh bool) deckLoad {
	ld := deckLoad{path: path}
	deck, err := catalog.LoadDeck(path)
	if err != nil {
		ld.err = err
		return ld
	}
	ld.deck = deck
	ld.slides = deck.Catalog(catalog.Dir(path))
	for _, s := range ld.slides.Slides() {
		ld.refs = append(ld.refs, s.ImageRef)
	}

	preload := render.Preload
	if fresh {
		preload = render.Reload
	}
	ld.failed, err = preload(ctx, ld.refs, preloadWorkers)
	if err != nil {
		ld.err = fmt.Errorf("viewer: preload: %w", err)
	}
	return ld
}

// install builds a fresh engine from a loaded deck. A deck edit always
// produces a new engine; the old one is closed.
func (g *Game) install(ld deckLoad) error {
	if ld.err != nil {
		return ld.err
	}
	for ref, ferr := range ld.failed {
		g.logger.Warn("slide image preload failed", zap.String("ref", ref), zap.Error(ferr))
	}

	cfg := carousel.DefaultConfig()
	ld.deck.Apply(&cfg)
	cfg.ReducedMotion = g.opts.ReducedMotion
	cfg.IsMobile = g.isMobile
	cfg.Logger = g.logger

	if g.engine != nil {
		g.cancelGesture()
		g.engine.Close()
	}
	g.sched = carousel.NewFrameScheduler()
	g.stage = newStage(cfg.FadeDuration, cfg.ReducedMotion, g.logger)
	g.hud = newHUD()
	g.engine = carousel.New(ld.slides, g.stage.surface(g.hud), g.sched, cfg)
	if err := g.engine.Err(); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	if !g.focused {
		g.engine.SetVisible(false)
	}
	if g.hovering {
		g.engine.PointerEnter()
	}
	g.engine.Start()

	eff := g.engine.Config()
	g.logger.Info("deck loaded",
		zap.String("name", ld.deck.Name),
		zap.Int("slides", ld.slides.Len()),
		zap.Duration("hold", eff.HoldInterval),
		zap.Duration("fade", eff.FadeDuration),
		zap.Bool("reduced_motion", eff.ReducedMotion),
	)
	return nil
}

func (g *Game) isMobile() bool {
	return g.width > 0 && g.width <= mobileBreakpoint
}

func (g *Game) Update() error {
	g.frames++
	dt := time.Second / time.Duration(ebiten.TPS())

	g.pollReload()
	g.updateFocus()
	g.updateViewport()
	g.hud.Update()
	g.updatePointer()
	if err := g.updateKeys(); err != nil {
		return err
	}

	g.sched.Advance(dt)
	g.stage.Update(dt)
	g.hud.SetPaused(g.engine.State().Paused)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.stage.Draw(screen)
	g.hud.Draw(screen)

	if g.opts.Debug {
		s := g.engine.State()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.2f  slide: %d/%d  layer: %d  phase: %v  paused: %v  autoplay: %v  mobile: %v  hold: %v",
			ebiten.ActualFPS(), s.Index+1, g.engine.Catalog().Len(), s.ActiveLayer, s.Phase, s.Paused, s.Autoplay, s.Mobile, g.engine.Config().HoldInterval,
		))
	}

	if g.snapshot {
		g.snapshot = false
		g.writeSnapshot(render.CaptureFrame(screen))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	g.width, g.height = int(outsideWidth), int(outsideHeight)
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close releases the engine and the deck watcher.
func (g *Game) Close() error {
	if g.cancelReload != nil {
		g.cancelReload()
	}
	g.engine.Close()
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}

// pollReload starts a background deck load on each edit and installs the
// result once it is ready. A newer edit cancels a load still in progress.
func (g *Game) pollReload() {
	select {
	case ld := <-g.reloaded:
		g.reloaded = nil
		g.cancelReload()
		g.cancelReload = nil
		if errors.Is(ld.err, context.Canceled) {
			return
		}
		if err := g.install(ld); err != nil {
			g.logger.Error("deck reload failed", zap.String("path", ld.path), zap.Error(err))
			return
		}
		render.Retain(ld.refs...)
	default:
	}

	if g.watcher == nil {
		return
	}
	select {
	case path, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		if filepath.Clean(path) != filepath.Clean(g.opts.DeckPath) {
			return
		}
		g.startReload()
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.logger.Warn("deck watcher", zap.Error(err))
		}
	default:
	}
}

func (g *Game) startReload() {
	if g.cancelReload != nil {
		g.cancelReload()
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan deckLoad, 1)
	path := g.opts.DeckPath
	go func() {
		done <- loadDeck(ctx, path, true)
	}()
	g.reloaded = done
	g.cancelReload = cancel
}

func (g *Game) updateFocus() {
	focused := ebiten.IsFocused()
	if focused == g.focused {
		return
	}
	g.focused = focused
	if !focused {
		g.cancelGesture()
	}
	g.engine.SetVisible(focused)
}

// cancelGesture drops a press whose release the window may never see.
func (g *Game) cancelGesture() {
	if !g.mouseDown && !g.touching {
		return
	}
	g.mouseDown = false
	g.touching = false
	g.engine.CancelPointer()
}

func (g *Game) updateViewport() {
	mobile := g.isMobile()
	if mobile == g.mobile {
		return
	}
	g.mobile = mobile
	g.engine.ViewportChanged()
}

func (g *Game) updatePointer() {
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		g.touchSeen = true
	}
	g.updateTouch()
	if g.touchSeen {
		return
	}

	mx, my := ebiten.CursorPosition()
	bounds := Rect{Width: float64(g.width), Height: float64(g.height)}
	hovering := g.focused && bounds.Contains(float64(mx), float64(my))
	if hovering != g.hovering {
		g.hovering = hovering
		if hovering {
			g.engine.PointerEnter()
		} else {
			g.engine.PointerLeave()
		}
	}

	x, y := float64(mx), float64(my)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if g.hud.Contains(mx, my) {
			return
		}
		g.mouseDown = true
		g.engine.PointerDown(x, y)
	case g.mouseDown && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.mouseDown = false
		if g.engine.PointerUp(x, y) == carousel.GestureTap {
			g.engine.Tap()
		}
	case g.mouseDown && !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.cancelGesture()
	case g.mouseDown:
		g.engine.PointerMove(x, y)
	}
}

func (g *Game) updateTouch() {
	if !g.touching {
		for _, id := range g.touchIDs {
			tx, ty := ebiten.TouchPosition(id)
			if g.hud.Contains(tx, ty) {
				continue
			}
			g.touching = true
			g.touchID = id
			g.engine.PointerDown(float64(tx), float64(ty))
			return
		}
		return
	}

	if inpututil.IsTouchJustReleased(g.touchID) {
		g.touching = false
		tx, ty := inpututil.TouchPositionInPreviousTick(g.touchID)
		if g.engine.PointerUp(float64(tx), float64(ty)) == carousel.GestureTap {
			g.engine.Tap()
		}
		return
	}
	if !slices.Contains(ebiten.AppendTouchIDs(nil), g.touchID) {
		g.cancelGesture()
		return
	}
	tx, ty := ebiten.TouchPosition(g.touchID)
	g.engine.PointerMove(float64(tx), float64(ty))
}

func (g *Game) updateKeys() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	idx := g.engine.State().Index
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.engine.GoTo(idx + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.engine.GoTo(idx - 1)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.engine.Tap()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.snapshot = true
	case inpututil.IsKeyJustPressed(ebiten.KeyC) && (ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)):
		g.copyCurrentRef()
	}
	return nil
}

func (g *Game) copyCurrentRef() {
	if !g.clipboardOK {
		return
	}
	ref := g.engine.Current().ImageRef
	clipboard.Write(clipboard.FmtText, []byte(ref))
	g.logger.Info("copied slide ref", zap.String("ref", ref))
}

func (g *Game) writeSnapshot(frame *image.RGBA) {
	dir := g.opts.SnapshotDir
	if dir == "" {
		dir = "snapshots"
	}
	path := filepath.Join(dir, fmt.Sprintf("slide-%02d-%s.webp", g.engine.State().Index+1, time.Now().Format("20060102-150405")))
	go func() {
		if err := render.WriteSnapshot(path, frame); err != nil {
			g.logger.Error("snapshot failed", zap.Error(err))
			return
		}
		g.logger.Info("snapshot written", zap.String("path", path))
	}()
}
