package carousel

import (
	"fmt"
	"testing"
	"time"
)

type recorder struct {
	ops []string
}

func (r *recorder) logf(format string, args ...any) {
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}

func (r *recorder) take() []string {
	out := r.ops
	r.ops = nil
	return out
}

type fakeLayer struct {
	r      *recorder
	id     int
	ref    string
	crop   Position
	active bool
}

func (l *fakeLayer) SetImage(ref string, crop Position) {
	l.ref, l.crop = ref, crop
	l.r.logf("layer%d image %s @ %s", l.id, ref, crop)
}

func (l *fakeLayer) SetCrop(crop Position) {
	l.crop = crop
	l.r.logf("layer%d crop %s", l.id, crop)
}

func (l *fakeLayer) SetActive(active bool) {
	l.active = active
	l.r.logf("layer%d active=%v", l.id, active)
}

type fakeContent struct {
	r       *recorder
	title   string
	caption string
	visible bool
}

func (c *fakeContent) SetText(title, caption string) {
	c.title, c.caption = title, caption
	c.r.logf("text %s / %s", title, caption)
}

func (c *fakeContent) FadeOut() {
	c.visible = false
	c.r.logf("fade-out")
}

func (c *fakeContent) FadeIn() {
	c.visible = true
	c.r.logf("fade-in")
}

type fakeDots struct {
	r        *recorder
	count    int
	active   int
	onSelect func(int)
}

func (d *fakeDots) Render(count, active int, onSelect func(int)) {
	d.count, d.active, d.onSelect = count, active, onSelect
	d.r.logf("dots render %d active=%d", count, active)
}

func (d *fakeDots) Highlight(active int) {
	d.active = active
	d.r.logf("dots highlight %d", active)
}

type harness struct {
	rec     *recorder
	sched   *FrameScheduler
	layers  [2]*fakeLayer
	content *fakeContent
	dots    *fakeDots
	engine  *Engine
	states  []State
}

func slides(n int) []Slide {
	out := make([]Slide, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Slide{
			ImageRef:    fmt.Sprintf("hero-%02d.jpg", i+1),
			Title:       fmt.Sprintf("TITLE %d", i+1),
			Caption:     fmt.Sprintf("caption %d", i+1),
			CropDesktop: "center center",
			CropMobile:  Position(fmt.Sprintf("50%% %d%%", 25+i)),
		})
	}
	return out
}

func newHarness(t *testing.T, n int, cfg Config) *harness {
	t.Helper()
	h := &harness{rec: &recorder{}, sched: NewFrameScheduler()}
	h.layers[0] = &fakeLayer{r: h.rec, id: 0}
	h.layers[1] = &fakeLayer{r: h.rec, id: 1}
	h.content = &fakeContent{r: h.rec}
	h.dots = &fakeDots{r: h.rec}
	cfg.OnChange = func(s State) { h.states = append(h.states, s) }
	surface := Surface{
		Layers:     [2]Layer{h.layers[0], h.layers[1]},
		Content:    h.content,
		Indicators: h.dots,
	}
	h.engine = New(NewCatalog(slides(n)...), surface, h.sched, cfg)
	if err := h.engine.Err(); err != nil {
		t.Fatalf("engine init: %v", err)
	}
	h.rec.take()
	return h
}

// settle runs the stagger and the following frame.
func (h *harness) settle() {
	h.sched.Advance(DefaultStagger)
	h.sched.Advance(0)
}

func (h *harness) wait(d time.Duration) {
	h.sched.Advance(d)
}
