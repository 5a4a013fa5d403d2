package catalog

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/milk9111/herocarousel/carousel"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoSlides          = errors.New("catalog: deck has no slides")
	ErrUnsupportedFormat = errors.New("catalog: unsupported deck format")
	errMissingImage      = errors.New("catalog: slide has no image")
	defaultCrop          = carousel.Position("center center")
)

type CropSpec struct {
	Desktop string `yaml:"desktop" toml:"desktop"`
	Mobile  string `yaml:"mobile" toml:"mobile"`
}

type SlideSpec struct {
	Image   string   `yaml:"image" toml:"image"`
	Title   string   `yaml:"title" toml:"title"`
	Caption string   `yaml:"caption" toml:"caption"`
	Crop    CropSpec `yaml:"crop" toml:"crop"`
}

type TimingSpec struct {
	HoldMS    int `yaml:"hold_ms" toml:"hold_ms"`
	StaggerMS int `yaml:"stagger_ms" toml:"stagger_ms"`
	FadeMS    int `yaml:"fade_ms" toml:"fade_ms"`
}

type SwipeSpec struct {
	LockPX   float64 `yaml:"lock_px" toml:"lock_px"`
	CommitPX float64 `yaml:"commit_px" toml:"commit_px"`
}

// DeckSpec is the on-disk description of one carousel.
type DeckSpec struct {
	Name   string      `yaml:"name" toml:"name"`
	Timing TimingSpec  `yaml:"timing" toml:"timing"`
	Swipe  SwipeSpec   `yaml:"swipe" toml:"swipe"`
	Slides []SlideSpec `yaml:"slides" toml:"slides"`
}

// LoadSpec loads a deck file and decodes it as YAML or TOML by extension.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("catalog: load %s: %w", filename, err)
	}

	spec, err := DecodeSpec[T](filename, data)
	if err != nil {
		return zero, err
	}
	return spec, nil
}

// DecodeSpec decodes data using the format implied by filename.
func DecodeSpec[T any](filename string, data []byte) (T, error) {
	var spec T
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, &spec); err != nil {
			return spec, fmt.Errorf("catalog: unmarshal %s: %w", filename, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &spec); err != nil {
			return spec, fmt.Errorf("catalog: unmarshal %s: %w", filename, err)
		}
	default:
		return spec, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	return spec, nil
}

// LoadDeck loads and validates a deck. An empty name loads DefaultDeck.
func LoadDeck(name string) (*DeckSpec, error) {
	if name == "" {
		name = DefaultDeck
	}
	spec, err := LoadSpec[DeckSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", name, err)
	}
	return &spec, nil
}

// Validate checks that the deck can back a carousel.
func (d *DeckSpec) Validate() error {
	if len(d.Slides) == 0 {
		return ErrNoSlides
	}
	var errs []error
	for i, s := range d.Slides {
		if strings.TrimSpace(s.Image) == "" {
			errs = append(errs, fmt.Errorf("slide %d: %w", i, errMissingImage))
		}
	}
	return errors.Join(errs...)
}

// Catalog converts the deck into an engine catalog. Image refs are joined to
// dir unless absolute; missing crops default to "center center".
func (d *DeckSpec) Catalog(dir string) carousel.Catalog {
	slides := make([]carousel.Slide, 0, len(d.Slides))
	for _, s := range d.Slides {
		ref := s.Image
		if dir != "" && dir != "." && !filepath.IsAbs(ref) {
			ref = filepath.Join(dir, filepath.FromSlash(ref))
		}
		slides = append(slides, carousel.Slide{
			ImageRef:    ref,
			Title:       s.Title,
			Caption:     s.Caption,
			CropDesktop: cropOr(s.Crop.Desktop, defaultCrop),
			CropMobile:  cropOr(s.Crop.Mobile, cropOr(s.Crop.Desktop, defaultCrop)),
		})
	}
	return carousel.NewCatalog(slides...)
}

// Apply copies the deck's timing and swipe settings over cfg. Zero values
// leave cfg untouched.
func (d *DeckSpec) Apply(cfg *carousel.Config) {
	if cfg == nil {
		return
	}
	if d.Timing.HoldMS > 0 {
		cfg.HoldInterval = time.Duration(d.Timing.HoldMS) * time.Millisecond
	}
	if d.Timing.StaggerMS > 0 {
		cfg.Stagger = time.Duration(d.Timing.StaggerMS) * time.Millisecond
	}
	if d.Timing.FadeMS > 0 {
		cfg.FadeDuration = time.Duration(d.Timing.FadeMS) * time.Millisecond
	}
	if d.Swipe.LockPX > 0 {
		cfg.SwipeLock = d.Swipe.LockPX
	}
	if d.Swipe.CommitPX > 0 {
		cfg.SwipeCommit = d.Swipe.CommitPX
	}
}

func cropOr(v string, fallback carousel.Position) carousel.Position {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return carousel.Position(strings.TrimSpace(v))
}
