package game

import (
	"golang.org/x/image/colornames"

	"github.com/not-fl3/particles-editor/internal/ui"
)

// countTap records the particle count of recent frames into a ring buffer
// so the status line can draw how busy the emitter has been.
type countTap struct {
	buffer    []int
	nextIndex int
	filled    int
}

func newCountTap(ringSize int) *countTap {
	return &countTap{
		buffer: make([]int, ringSize),
	}
}

func (t *countTap) record(n int) {
	t.buffer[t.nextIndex] = n
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
	}
	if t.filled < len(t.buffer) {
		t.filled++
	}
}

// snapshot returns up to the last n counts, most recent last.
func (t *countTap) snapshot(n int) []int {
	if n > t.filled {
		n = t.filled
	}
	out := make([]int, 0, n)
	// Walk backwards from nextIndex - 1
	idx := t.nextIndex - 1
	if idx < 0 {
		idx = len(t.buffer) - 1
	}
	for i := 0; i < n; i++ {
		out = append(out, t.buffer[idx])
		idx--
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
	}
	// reverse to chronological order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func (t *countTap) peak() int {
	p := 0
	for _, n := range t.snapshot(t.filled) {
		p = max(p, n)
	}
	return p
}

// sparkline draws the recorded counts into r, one column per frame, scaled
// to the peak.
func (t *countTap) sparkline(c ui.Canvas, r ui.Rect) {
	counts := t.snapshot(int(r.W))
	c.FillRect(r, colornames.Black)
	peak := t.peak()
	if peak == 0 {
		return
	}
	x := r.X + r.W - float64(len(counts))
	for i, n := range counts {
		h := clamp01(float64(n)/float64(peak)) * r.H
		if h == 0 {
			continue
		}
		px := x + float64(i) + 0.5
		c.Line(px, r.Y+r.H, px, r.Y+r.H-h, 1, colornames.Yellowgreen)
	}
}
