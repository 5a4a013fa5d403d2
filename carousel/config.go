package carousel

import (
	"time"

	"go.uber.org/zap"
)

const (
	DefaultHoldInterval = 6000 * time.Millisecond
	DefaultStagger      = 180 * time.Millisecond
	DefaultFadeDuration = 650 * time.Millisecond
	DefaultSwipeLock    = 18.0
	DefaultSwipeCommit  = 40.0
)

// Config tunes an Engine. Zero durations and thresholds take the defaults.
type Config struct {
	HoldInterval time.Duration
	Stagger      time.Duration
	// FadeDuration is not used by the engine itself; surfaces read it to
	// pace their opacity animation.
	FadeDuration time.Duration
	SwipeLock    float64
	SwipeCommit  float64

	// ReducedMotion is read once, at construction.
	ReducedMotion bool
	// IsMobile selects the crop token. Nil means desktop.
	IsMobile func() bool

	Logger *zap.Logger
	// OnChange, when set, receives a snapshot after every state change.
	OnChange func(State)
}

func DefaultConfig() Config {
	return Config{
		HoldInterval: DefaultHoldInterval,
		Stagger:      DefaultStagger,
		FadeDuration: DefaultFadeDuration,
		SwipeLock:    DefaultSwipeLock,
		SwipeCommit:  DefaultSwipeCommit,
	}
}

func (c Config) withDefaults() Config {
	if c.HoldInterval <= 0 {
		c.HoldInterval = DefaultHoldInterval
	}
	if c.Stagger <= 0 {
		c.Stagger = DefaultStagger
	}
	if c.FadeDuration <= 0 {
		c.FadeDuration = DefaultFadeDuration
	}
	if c.SwipeLock <= 0 {
		c.SwipeLock = DefaultSwipeLock
	}
	if c.SwipeCommit <= 0 {
		c.SwipeCommit = DefaultSwipeCommit
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}
