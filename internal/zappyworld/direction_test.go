package zappyworld

import "testing"

func TestDxDyMatchesSpec(t *testing.T) {
	cases := map[Direction][2]int{
		North: {0, -1},
		East:  {1, 0},
		South: {0, 1},
		West:  {-1, 0},
	}
	for dir, want := range cases {
		dx, dy := dir.DxDy()
		if dx != want[0] || dy != want[1] {
			t.Fatalf("%v: expected (%d,%d), got (%d,%d)", dir, want[0], want[1], dx, dy)
		}
	}
}

func TestTurnCycles(t *testing.T) {
	d := North
	for i := 0; i < 4; i++ {
		d = d.TurnRight()
	}
	if d != North {
		t.Fatalf("four right turns should return to North, got %v", d)
	}
	d = North
	for i := 0; i < 4; i++ {
		d = d.TurnLeft()
	}
	if d != North {
		t.Fatalf("four left turns should return to North, got %v", d)
	}
}

func TestOppositeIsInvolution(t *testing.T) {
	for _, d := range []Direction{North, East, South, West} {
		if d.Opposite().Opposite() != d {
			t.Fatalf("opposite of opposite of %v should be %v", d, d)
		}
	}
}
