package carousel

// Position is an opaque 2-D anchor token (for example "50% 35%" or
// "center center"). The engine never interprets it; it is handed to the
// surface as-is.
type Position string

// Slide is one catalog entry.
type Slide struct {
	ImageRef    string
	Title       string
	Caption     string
	CropDesktop Position
	CropMobile  Position
}

// Crop returns the crop token for the given viewport class.
func (s Slide) Crop(mobile bool) Position {
	if mobile {
		return s.CropMobile
	}
	return s.CropDesktop
}

// Catalog is an immutable ordered list of slides.
type Catalog struct {
	slides []Slide
}

func NewCatalog(slides ...Slide) Catalog {
	copied := append([]Slide(nil), slides...)
	return Catalog{slides: copied}
}

func (c Catalog) Len() int {
	return len(c.slides)
}

// Get returns the slide at i modulo Len. Negative indices wrap from the end.
// An empty catalog yields the zero Slide.
func (c Catalog) Get(i int) Slide {
	if len(c.slides) == 0 {
		return Slide{}
	}
	return c.slides[c.wrap(i)]
}

// Slides returns a copy of the catalog contents.
func (c Catalog) Slides() []Slide {
	out := make([]Slide, 0, len(c.slides))
	return append(out, c.slides...)
}

func (c Catalog) wrap(i int) int {
	n := len(c.slides)
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}
