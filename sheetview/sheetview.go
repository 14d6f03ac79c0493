// Package sheetview is a concrete animated sheet primitive: snap-point
// geometry and eased position animation stepped once per frame. It
// implements sheet.Surface so a sheet.Controller can drive it, and
// sheet.View so the Portal can composite it.
package sheetview

import (
	"math"
	"time"

	"github.com/jask/sheetstack/sheet"
	"github.com/jask/sheetstack/widgets"
)

// DefaultDuration is the animation length used when a move carries no
// duration override.
const DefaultDuration = 220 * time.Millisecond

// Model animates a sheet's vertical position between snap points. Positions
// are fractions of the container height: 0 is fully closed, 1 fully open.
type Model struct {
	title      string
	content    sheet.View
	snapPoints []float64
	duration   time.Duration

	pos       float64
	target    float64
	targetIdx int
	remaining time.Duration
	total     time.Duration
	from      float64
	animating bool

	lastReported int
	reportedOnce bool
	onChange     func(index int)
}

// New builds a primitive with ascending snap-point fractions. At least one
// snap point is required; fractions are clamped to (0, 1].
func New(title string, content sheet.View, snapPoints []float64) *Model {
	pts := make([]float64, 0, len(snapPoints))
	for _, p := range snapPoints {
		pts = append(pts, math.Min(1, math.Max(0.01, p)))
	}
	if len(pts) == 0 {
		pts = []float64{0.5}
	}
	return &Model{
		title:        title,
		content:      content,
		snapPoints:   pts,
		duration:     DefaultDuration,
		targetIdx:    sheet.ClosedIndex,
		lastReported: sheet.ClosedIndex,
	}
}

// OnChange registers the settle callback, normally the controller's
// HandleChange bridge.
func (m *Model) OnChange(fn func(index int)) { m.onChange = fn }

// SetDuration changes the default animation length for subsequent moves.
func (m *Model) SetDuration(d time.Duration) {
	if d > 0 {
		m.duration = d
	}
}

// Position returns the current height fraction.
func (m *Model) Position() float64 { return m.pos }

// Index returns the index of the current animation target.
func (m *Model) Index() int { return m.targetIdx }

// Animating reports whether a move is in flight.
func (m *Model) Animating() bool { return m.animating }

// SnapToIndex animates to the given snap point. Out-of-range indexes clamp
// to the nearest valid one; ClosedIndex behaves like Close.
func (m *Model) SnapToIndex(index int, opts ...sheet.SnapOption) {
	if index == sheet.ClosedIndex {
		m.Close(opts...)
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= len(m.snapPoints) {
		index = len(m.snapPoints) - 1
	}
	m.moveTo(m.snapPoints[index], index, opts...)
}

// SnapToPosition animates to an arbitrary height fraction. The reported
// index is the nearest snap point at or below the position, ClosedIndex
// when the position is zero.
func (m *Model) SnapToPosition(position float64, opts ...sheet.SnapOption) {
	position = math.Min(1, math.Max(0, position))
	m.moveTo(position, m.indexAtOrBelow(position), opts...)
}

// Expand animates to the highest snap point.
func (m *Model) Expand(opts ...sheet.SnapOption) {
	m.SnapToIndex(len(m.snapPoints)-1, opts...)
}

// Collapse animates to the lowest snap point.
func (m *Model) Collapse(opts ...sheet.SnapOption) {
	m.SnapToIndex(0, opts...)
}

// Close animates fully off screen.
func (m *Model) Close(opts ...sheet.SnapOption) {
	m.moveTo(0, sheet.ClosedIndex, opts...)
}

func (m *Model) moveTo(target float64, index int, opts ...sheet.SnapOption) {
	spec := sheet.ResolveSnapSpec(m.duration, opts...)
	m.target = target
	m.targetIdx = index
	m.from = m.pos
	m.remaining = spec.Duration
	m.total = spec.Duration
	m.animating = true
	if spec.Duration <= 0 || m.pos == target {
		m.settle()
	}
}

// Step advances the animation by dt. Returns true while more frames are
// needed. Settling at the target reports the discrete index through the
// OnChange callback exactly once per settle.
func (m *Model) Step(dt time.Duration) bool {
	if !m.animating {
		return false
	}
	m.remaining -= dt
	if m.remaining <= 0 || m.total <= 0 {
		m.settle()
		return false
	}
	t := 1 - float64(m.remaining)/float64(m.total)
	m.pos = m.from + (m.target-m.from)*easeOutCubic(t)
	return true
}

func (m *Model) settle() {
	m.pos = m.target
	m.animating = false
	m.remaining = 0
	if m.reportedOnce && m.lastReported == m.targetIdx {
		return
	}
	m.lastReported = m.targetIdx
	m.reportedOnce = true
	if m.onChange != nil {
		m.onChange(m.targetIdx)
	}
}

func (m *Model) indexAtOrBelow(position float64) int {
	if position <= 0 {
		return sheet.ClosedIndex
	}
	idx := sheet.ClosedIndex
	for i, p := range m.snapPoints {
		if p <= position {
			idx = i
		}
	}
	if idx == sheet.ClosedIndex {
		idx = 0
	}
	return idx
}

// VisibleRows converts the current position into composited card rows for
// a container of the given height.
func (m *Model) VisibleRows(height int) int {
	return int(math.Round(m.pos * float64(height)))
}

// View renders the card sized for the highest snap point; the compositor
// reveals only VisibleRows of it.
func (m *Model) View(width, height int) string {
	body := ""
	rows := int(math.Round(m.snapPoints[len(m.snapPoints)-1] * float64(height)))
	if m.content != nil {
		body = m.content.View(width-4, rows-3)
	}
	return widgets.Card(m.title, body, width)
}

func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
