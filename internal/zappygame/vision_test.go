package zappygame

import (
	"testing"

	"github.com/lucas/zappy/internal/zappyworld"
)

func TestComputeSeeCellCount(t *testing.T) {
	m := zappyworld.NewMap(10, 10)
	pos := zappyworld.Position{X: 5, Y: 5, Dir: zappyworld.North}
	for level := 0; level <= 3; level++ {
		cells := ComputeSee(m, pos, level, 1)
		want := (level + 1) * (level + 1)
		if len(cells) != want {
			t.Fatalf("level %d: expected %d cells, got %d", level, want, len(cells))
		}
	}
}

func TestComputeSeeExcludesSelfOnOwnCell(t *testing.T) {
	m := zappyworld.NewMap(5, 5)
	pos := zappyworld.Position{X: 2, Y: 2, Dir: zappyworld.North}
	m.CellAt(pos).AddPlayer(1)
	m.CellAt(pos).AddPlayer(2)

	cells := ComputeSee(m, pos, 0, 1)
	if len(cells) != 1 {
		t.Fatalf("expected 1 cell at level 0, got %d", len(cells))
	}
	if cells[0] != "player" {
		t.Fatalf("expected exactly one other player token, got %q", cells[0])
	}
}

func TestComputeSeeWrapsAcrossEdges(t *testing.T) {
	m := zappyworld.NewMap(5, 5)
	pos := zappyworld.Position{X: 0, Y: 0, Dir: zappyworld.North}
	m.Cell(0, 4).AddResource(zappyworld.Nourriture) // directly "north" of (0,0), wraps to y=4

	cells := ComputeSee(m, pos, 1, 1)
	found := false
	for _, c := range cells {
		if c == "nourriture" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected to see wrapped nourriture, got %+v", cells)
	}
}

func TestInventoryTokensOrder(t *testing.T) {
	inv := zappyworld.StoneSet{}
	inv[zappyworld.Linemate] = 2
	tokens := InventoryTokens(50, inv)
	if tokens[0] != "nourriture 50" {
		t.Fatalf("expected nourriture first, got %q", tokens[0])
	}
	if len(tokens) != 7 {
		t.Fatalf("expected 7 tokens (nourriture + 6 stones), got %d", len(tokens))
	}
	if tokens[2] != "linemate 2" {
		t.Fatalf("expected linemate count at index 2, got %q", tokens[2])
	}
}
