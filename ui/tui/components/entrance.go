package components

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const settleEpsilon = 0.05

// Entrance slides rows in one after another. Each row starts at From cells of
// offset and springs to zero once its stagger delay has elapsed.
type Entrance struct {
	From float64

	spring     harmonica.Spring
	fps        int
	delay      int // frames between row starts
	frame      int
	offsets    []float64
	velocities []float64
}

// NewEntrance builds an animator stepping at fps frames per second.
func NewEntrance(fps int, from float64, stagger time.Duration) *Entrance {
	delay := int(stagger.Seconds() * float64(fps))
	return &Entrance{
		From: from,
		// Stiff and nearly critically damped so rows land without overshoot.
		spring: harmonica.NewSpring(harmonica.FPS(fps), 12.0, 0.9),
		fps:    fps,
		delay:  delay,
	}
}

// FrameInterval is the tick period matching the configured fps.
func (e *Entrance) FrameInterval() time.Duration {
	return time.Second / time.Duration(e.fps)
}

// Reset restarts the animation for n rows.
func (e *Entrance) Reset(n int) {
	e.frame = 0
	e.offsets = make([]float64, n)
	e.velocities = make([]float64, n)
	for i := range e.offsets {
		e.offsets[i] = e.From
	}
}

// Skip settles every row immediately.
func (e *Entrance) Skip() {
	for i := range e.offsets {
		e.offsets[i] = 0
		e.velocities[i] = 0
	}
	e.frame = len(e.offsets) * e.delay
}

// Step advances one frame.
func (e *Entrance) Step() {
	e.frame++
	for i := range e.offsets {
		if e.frame < i*e.delay {
			continue
		}
		e.offsets[i], e.velocities[i] = e.spring.Update(e.offsets[i], e.velocities[i], 0)
		if math.Abs(e.offsets[i]) < settleEpsilon && math.Abs(e.velocities[i]) < settleEpsilon {
			e.offsets[i], e.velocities[i] = 0, 0
		}
	}
}

// Offsets returns the current per-row offsets.
func (e *Entrance) Offsets() []float64 {
	return e.offsets
}

// Settled reports whether every row has come to rest.
func (e *Entrance) Settled() bool {
	for i := range e.offsets {
		if e.offsets[i] != 0 {
			return false
		}
	}
	return true
}
