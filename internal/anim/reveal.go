package anim

import "time"

// Reveal entrance parameters shared by every section of the page.
const (
	// DefaultThreshold is the fraction of a region that must be visible
	// before its entrance fires.
	DefaultThreshold = 0.12

	// RevealDuration is the length of the entrance transition.
	RevealDuration = 700 * time.Millisecond

	// StaggerStep is the extra delay applied per sibling when a group of
	// regions (project cards) reveals together.
	StaggerStep = 120 * time.Millisecond
)

// Region is a vertical slice of the page in line coordinates.
type Region struct {
	Top    int
	Height int
}

// Viewport is the slice of the page currently on screen.
type Viewport struct {
	Top    int
	Height int
}

// VisibleFraction reports how much of r lies inside v, as a fraction of the
// region's own height.
func VisibleFraction(r Region, v Viewport) float64 {
	if r.Height <= 0 || v.Height <= 0 {
		return 0
	}
	top := max(r.Top, v.Top)
	bottom := min(r.Top+r.Height, v.Top+v.Height)
	if bottom <= top {
		return 0
	}
	return float64(bottom-top) / float64(r.Height)
}

// Reveal is a one-way visibility latch. It starts hidden, flips to visible
// the first time an observed intersection fraction reaches its threshold,
// and never flips back. After latching it ignores further samples, so a
// region that scrolls back out of view stays revealed.
type Reveal struct {
	threshold float64
	delay     time.Duration
	visible   bool
	revealAt  time.Time
}

// NewReveal builds a latch for the given threshold. Non-positive thresholds
// fall back to DefaultThreshold.
func NewReveal(threshold float64) *Reveal {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Reveal{threshold: threshold}
}

// WithDelay offsets the entrance transition, used to stagger siblings.
func (r *Reveal) WithDelay(d time.Duration) *Reveal {
	r.delay = d
	return r
}

// Observe feeds one intersection sample. It returns true only on the sample
// that latches the reveal; every later call is a no-op.
func (r *Reveal) Observe(fraction float64, now time.Time) bool {
	if r.visible || fraction < r.threshold {
		return false
	}
	r.visible = true
	r.revealAt = now.Add(r.delay)
	return true
}

// ForceVisible latches without a transition. Used when animations are
// disabled: the page fails open to fully visible.
func (r *Reveal) ForceVisible() {
	r.visible = true
	r.revealAt = time.Time{}
}

// Visible reports whether the latch has fired.
func (r *Reveal) Visible() bool { return r.visible }

// Progress samples the entrance transition at now: 0 before the (possibly
// delayed) start, 1 once the transition has settled, linear in between.
func (r *Reveal) Progress(now time.Time) float64 {
	if !r.visible {
		return 0
	}
	if r.revealAt.IsZero() {
		return 1
	}
	elapsed := now.Sub(r.revealAt)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= RevealDuration {
		return 1
	}
	return float64(elapsed) / float64(RevealDuration)
}

// Settled reports whether the entrance transition has finished.
func (r *Reveal) Settled(now time.Time) bool {
	return r.visible && r.Progress(now) >= 1
}
