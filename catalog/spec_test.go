package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/milk9111/herocarousel/carousel"
)

func TestLoadDefaultDeck(t *testing.T) {
	deck, err := LoadDeck("")
	if err != nil {
		t.Fatalf("LoadDeck: %v", err)
	}
	if deck.Name != "hero" {
		t.Fatalf("expected hero deck, got %q", deck.Name)
	}
	c := deck.Catalog(".")
	if c.Len() != 6 {
		t.Fatalf("expected 6 slides, got %d", c.Len())
	}
	first := c.Get(0)
	if first.ImageRef != "assets/images/hero/hero-01.jpg" {
		t.Fatalf("unexpected image ref %q", first.ImageRef)
	}
	if first.CropMobile != "50% 35%" || first.CropDesktop != "center center" {
		t.Fatalf("unexpected crops %+v", first)
	}
	if first.Title != "PRESENCE\nWITHOUT NOISE" {
		t.Fatalf("unexpected title %q", first.Title)
	}
}

func TestDeckApply(t *testing.T) {
	deck := &DeckSpec{
		Timing: TimingSpec{HoldMS: 4000, FadeMS: 300},
		Swipe:  SwipeSpec{CommitPX: 60},
	}
	cfg := carousel.DefaultConfig()
	deck.Apply(&cfg)

	if cfg.HoldInterval != 4*time.Second {
		t.Fatalf("hold = %v", cfg.HoldInterval)
	}
	if cfg.Stagger != carousel.DefaultStagger {
		t.Fatalf("zero stagger should keep default, got %v", cfg.Stagger)
	}
	if cfg.FadeDuration != 300*time.Millisecond {
		t.Fatalf("fade = %v", cfg.FadeDuration)
	}
	if cfg.SwipeLock != carousel.DefaultSwipeLock || cfg.SwipeCommit != 60 {
		t.Fatalf("swipe thresholds = %v/%v", cfg.SwipeLock, cfg.SwipeCommit)
	}
}

func TestLoadTomlDeckFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spring.toml")
	body := `name = "spring"

[timing]
hold_ms = 5000

[[slides]]
image = "img/a.webp"
title = "A"
caption = "first"

[slides.crop]
mobile = "40% 20%"

[[slides]]
image = "/abs/b.tga"
title = "B"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write deck: %v", err)
	}

	deck, err := LoadDeck(path)
	if err != nil {
		t.Fatalf("LoadDeck: %v", err)
	}
	got := deck.Catalog(Dir(path)).Slides()
	want := []carousel.Slide{
		{
			ImageRef:    filepath.Join(dir, "img", "a.webp"),
			Title:       "A",
			Caption:     "first",
			CropDesktop: "center center",
			CropMobile:  "40% 20%",
		},
		{
			ImageRef:    "/abs/b.tga",
			Title:       "B",
			CropDesktop: "center center",
			CropMobile:  "center center",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("catalog mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDeckErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		return p
	}

	cases := []struct {
		name string
		path string
		want error
	}{
		{"no_slides", write("empty.yaml", "name: empty\n"), ErrNoSlides},
		{"missing_image", write("noimg.yaml", "slides:\n  - title: x\n"), errMissingImage},
		{"bad_extension", write("deck.json", "{}"), ErrUnsupportedFormat},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := LoadDeck(c.path)
			if !errors.Is(err, c.want) {
				t.Fatalf("LoadDeck(%s) = %v, want %v", c.path, err, c.want)
			}
		})
	}

	if _, err := LoadDeck(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for a missing deck")
	}
}

func TestIsDeckFile(t *testing.T) {
	for path, want := range map[string]bool{
		"hero.yaml":  true,
		"HERO.YML":   true,
		"deck.toml":  true,
		"image.webp": false,
		"notes":      false,
		"deck.yaml~": false,
	} {
		if got := IsDeckFile(path); got != want {
			t.Fatalf("IsDeckFile(%q) = %v, want %v", path, got, want)
		}
	}
}
