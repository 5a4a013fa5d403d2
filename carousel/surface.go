package carousel

// Layer is one of the two alternating background render targets.
type Layer interface {
	SetImage(ref string, crop Position)
	SetCrop(crop Position)
	SetActive(active bool)
}

// Content is the foreground title/caption block.
type Content interface {
	SetText(title, caption string)
	FadeOut()
	FadeIn()
}

// Indicators is the dot strip, one dot per slide.
type Indicators interface {
	// Render builds count dots with active highlighted; onSelect is called
	// with the dot index when one is clicked.
	Render(count, active int, onSelect func(int))
	Highlight(active int)
}

// Surface bundles the render targets an engine writes to. Every field is
// required.
type Surface struct {
	Layers     [2]Layer
	Content    Content
	Indicators Indicators
}

func (s Surface) missing() []string {
	var out []string
	if s.Layers[0] == nil {
		out = append(out, "layer 0")
	}
	if s.Layers[1] == nil {
		out = append(out, "layer 1")
	}
	if s.Content == nil {
		out = append(out, "content")
	}
	if s.Indicators == nil {
		out = append(out, "indicators")
	}
	return out
}
