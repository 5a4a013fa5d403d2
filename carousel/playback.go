package carousel

import "time"

// playbackClock owns the single autoplay timer. It never picks slides; it
// only calls tick.
type playbackClock struct {
	sched    Scheduler
	hold     time.Duration
	disabled bool
	tick     func()
	timer    Timer
}

func (c *playbackClock) start() {
	if c.timer != nil || c.disabled {
		return
	}
	c.timer = c.sched.Every(c.hold, c.tick)
}

func (c *playbackClock) stop() {
	if c.timer == nil {
		return
	}
	c.timer.Stop()
	c.timer = nil
}

func (c *playbackClock) active() bool {
	return c.timer != nil
}
