package zappyworld

import "testing"

func TestEuclidModNeverClamps(t *testing.T) {
	cases := []struct{ a, m, want int }{
		{-1, 5, 4},
		{-6, 5, 4},
		{5, 5, 0},
		{7, 5, 2},
		{0, 5, 0},
	}
	for _, c := range cases {
		if got := euclidMod(c.a, c.m); got != c.want {
			t.Fatalf("euclidMod(%d,%d): expected %d, got %d", c.a, c.m, c.want, got)
		}
	}
}

func TestPositionMovedWrapsTorus(t *testing.T) {
	m := NewMap(5, 5)
	p := Position{X: 0, Y: 0, Dir: North}
	moved := p.Moved(m.Width, m.Height)
	if moved.X != 0 || moved.Y != 4 {
		t.Fatalf("expected wrap to (0,4), got (%d,%d)", moved.X, moved.Y)
	}

	p = Position{X: 4, Y: 0, Dir: East}
	moved = p.Moved(m.Width, m.Height)
	if moved.X != 0 || moved.Y != 0 {
		t.Fatalf("expected wrap to (0,0), got (%d,%d)", moved.X, moved.Y)
	}
}

func TestGenerateResourcesTotalCount(t *testing.T) {
	m := NewMap(5, 5)
	rngSeeded := newDeterministicRNG()
	m.GenerateResources(rngSeeded)

	total := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			cell := m.Cell(x, y)
			total += cell.Nourriture
			for k := StoneKind(0); k < StoneKindCount; k++ {
				total += cell.Stones[k]
			}
		}
	}
	want := (m.Width * m.Height * 13) / 5
	if total != want {
		t.Fatalf("expected %d total resources, got %d", want, total)
	}
}

func TestCellResourceRoundTrip(t *testing.T) {
	c := NewCell()
	c.AddResource(StoneResource(Linemate))
	if c.Stones[Linemate] != 1 {
		t.Fatalf("expected 1 linemate after add")
	}
	if !c.RemoveResource(StoneResource(Linemate)) {
		t.Fatal("expected remove to succeed")
	}
	if c.Stones[Linemate] != 0 {
		t.Fatalf("expected 0 linemate after remove")
	}
	if c.RemoveResource(StoneResource(Linemate)) {
		t.Fatal("expected remove to fail on empty cell")
	}
}

func TestResourceFromName(t *testing.T) {
	r, ok := ResourceFromName("linemate")
	if !ok || !r.IsStone || r.Stone != Linemate {
		t.Fatalf("unexpected parse: %+v ok=%v", r, ok)
	}
	r, ok = ResourceFromName("nourriture")
	if !ok || r.IsStone {
		t.Fatalf("unexpected parse: %+v ok=%v", r, ok)
	}
	if _, ok := ResourceFromName("bogus"); ok {
		t.Fatal("expected bogus resource name to fail")
	}
}
