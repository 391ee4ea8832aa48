package drag

import "testing"

func TestTrackerIncrementalDeltas(t *testing.T) {
	var tr Tracker
	tr.Press(Point{100, 100})

	steps := []struct {
		to   Point
		want Point
	}{
		{Point{150, 130}, Point{50, 30}},
		{Point{160, 140}, Point{10, 10}},
	}

	var total Point
	for _, s := range steps {
		delta, ok := tr.Move(s.to)
		if !ok {
			t.Fatalf("Move(%v) not applied while dragging", s.to)
		}
		if delta != s.want {
			t.Errorf("Move(%v) = %v, want %v", s.to, delta, s.want)
		}
		total = total.Add(delta)
	}

	if want := (Point{60, 40}); total != want {
		t.Errorf("cumulative delta = %v, want %v", total, want)
	}
}

func TestTrackerIdle(t *testing.T) {
	var tr Tracker
	if tr.State() != Idle {
		t.Fatalf("zero Tracker state = %v, want idle", tr.State())
	}
	if _, ok := tr.Move(Point{10, 10}); ok {
		t.Error("Move applied without a press")
	}

	tr.Press(Point{0, 0})
	if tr.State() != Dragging {
		t.Errorf("state after Press = %v, want dragging", tr.State())
	}
	tr.Release()
	if tr.State() != Idle {
		t.Errorf("state after Release = %v, want idle", tr.State())
	}
	if _, ok := tr.Move(Point{5, 5}); ok {
		t.Error("Move applied after Release")
	}
}

func TestTrackerNewGestureStartsFresh(t *testing.T) {
	var tr Tracker
	tr.Press(Point{10, 10})
	tr.Move(Point{20, 20})
	tr.Release()

	tr.Press(Point{500, 500})
	delta, ok := tr.Move(Point{505, 498})
	if !ok {
		t.Fatal("Move not applied")
	}
	if want := (Point{5, -2}); delta != want {
		t.Errorf("Move = %v, want %v", delta, want)
	}
}

func TestMoverClampsWithoutDrift(t *testing.T) {
	var m Mover
	m.Press(Point{20, 20}, Point{0, 0})

	steps := []struct {
		to   Point
		want Point
	}{
		{Point{-10, 20}, Point{0, 0}},
		{Point{20, 20}, Point{0, 0}},
		{Point{25, 20}, Point{5, 0}},
		{Point{25, 50}, Point{5, 30}},
	}

	for _, s := range steps {
		got, ok := m.Move(s.to)
		if !ok {
			t.Fatalf("Move(%v) not applied while dragging", s.to)
		}
		if got != s.want {
			t.Errorf("Move(%v) = %v, want %v", s.to, got, s.want)
		}
	}
}

func TestMoverMinimum(t *testing.T) {
	m := Mover{Min: Point{10, 10}}
	m.Press(Point{50, 50}, Point{30, 30})

	got, ok := m.Move(Point{0, 100})
	if !ok {
		t.Fatal("Move not applied")
	}
	if want := (Point{10, 80}); got != want {
		t.Errorf("Move = %v, want %v", got, want)
	}
}

func TestMoverIdle(t *testing.T) {
	var m Mover
	if _, ok := m.Move(Point{1, 1}); ok {
		t.Error("Move applied without a press")
	}

	m.Press(Point{0, 0}, Point{0, 0})
	m.Release()
	if m.State() != Idle {
		t.Errorf("state after Release = %v, want idle", m.State())
	}
	if _, ok := m.Move(Point{5, 5}); ok {
		t.Error("Move applied after Release")
	}
}
