package carousel

import "time"

// Timer is a handle to a scheduled continuation.
type Timer interface {
	Stop()
}

// Scheduler runs continuations on the engine's single logical thread.
type Scheduler interface {
	// AfterFunc runs fn once after d.
	AfterFunc(d time.Duration, fn func()) Timer
	// Every runs fn each time d elapses until stopped.
	Every(d time.Duration, fn func()) Timer
	// NextFrame runs fn at the start of the next frame.
	NextFrame(fn func())
}

// FrameScheduler is a virtual clock advanced by a host frame loop. Nothing
// runs in the background: continuations fire inside Advance, on the caller's
// goroutine.
type FrameScheduler struct {
	now   time.Duration
	seq   uint64
	tasks []*task
	frame []func()
}

type task struct {
	seq     uint64
	due     time.Duration
	every   time.Duration
	fn      func()
	stopped bool
}

func (t *task) Stop() {
	if t == nil {
		return
	}
	t.stopped = true
}

func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// Now reports the virtual time elapsed since creation.
func (s *FrameScheduler) Now() time.Duration {
	return s.now
}

func (s *FrameScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return s.schedule(d, 0, fn)
}

func (s *FrameScheduler) Every(d time.Duration, fn func()) Timer {
	if d <= 0 {
		d = time.Millisecond
	}
	return s.schedule(d, d, fn)
}

func (s *FrameScheduler) NextFrame(fn func()) {
	if fn == nil {
		return
	}
	s.frame = append(s.frame, fn)
}

func (s *FrameScheduler) schedule(d, every time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &task{seq: s.seq, due: s.now + d, every: every, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Pending reports the number of live timers, repeating or not. Frame
// callbacks are not counted.
func (s *FrameScheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Advance first drains the frame callbacks queued before this call, then
// moves the clock forward by dt firing every timer that falls due, in due
// order. Timers created while firing also run if they fall inside the step.
func (s *FrameScheduler) Advance(dt time.Duration) {
	frame := s.frame
	s.frame = nil
	for _, fn := range frame {
		fn()
	}

	target := s.now + dt
	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}
		s.now = t.due
		if t.every > 0 {
			t.due += t.every
		} else {
			t.stopped = true
		}
		if t.fn != nil {
			t.fn()
		}
	}
	if target > s.now {
		s.now = target
	}
	s.compact()
}

func (s *FrameScheduler) nextDue(limit time.Duration) *task {
	var next *task
	for _, t := range s.tasks {
		if t.stopped || t.due > limit {
			continue
		}
		if next == nil || t.due < next.due || (t.due == next.due && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (s *FrameScheduler) compact() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.stopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}
