package main

import (
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/herocarousel/carousel"
	"github.com/milk9111/herocarousel/common"
	"github.com/milk9111/herocarousel/render"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"
)

const (
	titleScale   = 4.0
	captionScale = 2.0
	captionRise  = 12.0
	placeholderW = 64
	placeholderH = 36
)

// stage is the ebiten surface for one carousel: two background layers and a
// caption block, each easing its opacity toward a target.
type stage struct {
	layers  [2]*bgLayer
	caption *caption
	fade    time.Duration
	reduced bool
	face    text.Face
	logger  *zap.Logger
	warned  map[string]bool
}

func newStage(fade time.Duration, reduced bool, logger *zap.Logger) *stage {
	if logger == nil {
		logger = zap.NewNop()
	}
	st := &stage{
		fade:    fade,
		reduced: reduced,
		face:    text.NewGoXFace(basicfont.Face7x13),
		logger:  logger,
		warned:  make(map[string]bool),
	}
	st.layers[0] = &bgLayer{st: st}
	st.layers[1] = &bgLayer{st: st}
	st.caption = &caption{st: st}
	return st
}

func (st *stage) surface(dots carousel.Indicators) carousel.Surface {
	return carousel.Surface{
		Layers:     [2]carousel.Layer{st.layers[0], st.layers[1]},
		Content:    st.caption,
		Indicators: dots,
	}
}

func (st *stage) Update(dt time.Duration) {
	step := 1.0
	if !st.reduced && st.fade > 0 {
		step = float64(dt) / float64(st.fade)
	}
	for _, l := range st.layers {
		l.alpha = common.Approach(l.alpha, l.target, step)
	}
	st.caption.alpha = common.Approach(st.caption.alpha, st.caption.target, step)
}

func (st *stage) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	b := screen.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	// The outgoing layer goes underneath so the incoming one fades over it.
	order := []*bgLayer{st.layers[0], st.layers[1]}
	if st.layers[0].target > st.layers[1].target {
		order[0], order[1] = order[1], order[0]
	}
	for _, l := range order {
		l.draw(screen, w, h)
	}
	st.caption.draw(screen, w, h)
}

func (st *stage) image(ref string) *ebiten.Image {
	if img := render.GetImage(ref); img != nil {
		return img
	}
	img, err := render.LoadImage(ref)
	if err == nil {
		return img
	}
	if !st.warned[ref] {
		st.warned[ref] = true
		st.logger.Warn("slide image unavailable, using placeholder", zap.String("ref", ref), zap.Error(err))
	}
	img = ebiten.NewImageFromImage(render.Placeholder(ref, placeholderW, placeholderH))
	render.RegisterImage(ref, img)
	return img
}

type bgLayer struct {
	st     *stage
	ref    string
	crop   carousel.Position
	anchor render.Anchor
	alpha  float64
	target float64
	shown  bool
}

func (l *bgLayer) SetImage(ref string, crop carousel.Position) {
	l.ref = ref
	l.SetCrop(crop)
}

func (l *bgLayer) SetCrop(crop carousel.Position) {
	l.crop = crop
	a, ok := render.ParsePosition(string(crop))
	if !ok {
		l.st.logger.Debug("unrecognised crop token, centering", zap.String("crop", string(crop)))
	}
	l.anchor = a
}

// SetActive eases toward the new opacity. The first call snaps so the
// initial slide appears without a fade from black.
func (l *bgLayer) SetActive(active bool) {
	l.target = 0
	if active {
		l.target = 1
	}
	if !l.shown || l.st.reduced {
		l.alpha = l.target
		l.shown = true
	}
}

func (l *bgLayer) draw(screen *ebiten.Image, w, h float64) {
	if l.ref == "" || l.alpha <= 0 {
		return
	}
	img := l.st.image(l.ref)
	ib := img.Bounds()
	p := render.Cover(float64(ib.Dx()), float64(ib.Dy()), w, h, l.anchor)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(p.Scale, p.Scale)
	op.GeoM.Translate(p.X, p.Y)
	op.ColorScale.ScaleAlpha(float32(common.SmoothStep(l.alpha)))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

type caption struct {
	st     *stage
	title  string
	body   string
	alpha  float64
	target float64
}

func (c *caption) SetText(title, body string) {
	c.title, c.body = title, body
}

func (c *caption) FadeOut() {
	c.target = 0
	if c.st.reduced {
		c.alpha = 0
	}
}

func (c *caption) FadeIn() {
	c.target = 1
	if c.st.reduced {
		c.alpha = 1
	}
}

func (c *caption) draw(screen *ebiten.Image, w, h float64) {
	if c.alpha <= 0 {
		return
	}
	a := common.SmoothStep(c.alpha)
	rise := (1 - a) * captionRise
	lineH := c.st.face.Metrics().HAscent + c.st.face.Metrics().HDescent

	titleLines := float64(strings.Count(c.title, "\n") + 1)
	bodyLines := float64(strings.Count(c.body, "\n") + 1)
	titleH := titleLines * lineH * titleScale
	bodyH := bodyLines * lineH * captionScale
	gap := lineH * captionScale
	y := (h-(titleH+gap+bodyH))/2 + rise

	c.drawBlock(screen, c.title, titleScale, w/2, y, lineH, a)
	c.drawBlock(screen, c.body, captionScale, w/2, y+titleH+gap, lineH, a)
}

func (c *caption) drawBlock(screen *ebiten.Image, s string, scale, cx, y, lineH, alpha float64) {
	if s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.LineSpacing = lineH
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, s, c.st.face, op)
}
