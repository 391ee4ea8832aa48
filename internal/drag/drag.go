// Package drag tracks pointer-driven window moves.
package drag

// Point is a position in screen coordinates.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// State is the gesture state of a Tracker.
type State int

const (
	// Idle means no button is held.
	Idle State = iota
	// Dragging means a press was recorded and moves produce deltas.
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Tracker turns a press/move/release sequence into incremental window deltas.
// The zero value is idle and ready to use.
type Tracker struct {
	state State
	last  Point
}

// State returns the current gesture state.
func (t *Tracker) State() State {
	return t.state
}

// Press records the pointer position and starts a drag.
func (t *Tracker) Press(p Point) {
	t.state = Dragging
	t.last = p
}

// Move returns how far the pointer travelled since the last recorded position
// and records p. It returns false when no drag is in progress.
func (t *Tracker) Move(p Point) (Point, bool) {
	if t.state != Dragging {
		return Point{}, false
	}
	delta := p.Sub(t.last)
	t.last = p
	return delta, true
}

// Release ends the drag.
func (t *Tracker) Release() {
	t.state = Idle
	t.last = Point{}
}

// Mover follows the pointer with a window origin that is held inside Min.
// The unclamped target keeps accumulating while the window is pinned, so the
// window only leaves the edge once the pointer returns to where it grabbed.
type Mover struct {
	Min Point

	tracker Tracker
	target  Point
}

// State returns the current gesture state.
func (m *Mover) State() State {
	return m.tracker.State()
}

// Press starts a drag with the pointer at pointer and the window at origin.
func (m *Mover) Press(pointer, origin Point) {
	m.tracker.Press(pointer)
	m.target = origin
}

// Move returns the clamped window origin for the pointer at p.
// It returns false when no drag is in progress.
func (m *Mover) Move(p Point) (Point, bool) {
	delta, ok := m.tracker.Move(p)
	if !ok {
		return Point{}, false
	}
	m.target = m.target.Add(delta)
	return m.clamp(m.target), true
}

// Release ends the drag.
func (m *Mover) Release() {
	m.tracker.Release()
	m.target = Point{}
}

func (m *Mover) clamp(p Point) Point {
	p.X = max(p.X, m.Min.X)
	p.Y = max(p.Y, m.Min.Y)
	return p
}
