package zappyworld

import "math/rand"

// resourceWeights implements the weighted distribution from spec.md §4.1.4:
// each stone kind weight 1, Nourriture weight 2, total weight 8.
var resourceWeights = [...]Resource{
	StoneResource(Deraumere),
	StoneResource(Linemate),
	StoneResource(Mendiane),
	StoneResource(Phiras),
	StoneResource(Sibur),
	StoneResource(Thystame),
	Nourriture,
	Nourriture,
}

// Map is the toroidal grid of cells. Grounded on the teacher's World type
// (DowLucas-promptlands/internal/game/world.go) and on
// original_source/shared/src/map.rs's Map, reduced to the counts-only Cell
// model since no sub-cell rendering position is needed on the wire.
type Map struct {
	Width, Height int
	cells         [][]*Cell
}

// NewMap builds an empty width x height torus with no resources.
func NewMap(width, height int) *Map {
	cells := make([][]*Cell, height)
	for y := range cells {
		row := make([]*Cell, width)
		for x := range row {
			row[x] = NewCell()
		}
		cells[y] = row
	}
	return &Map{Width: width, Height: height, cells: cells}
}

// Cell returns the cell at (x, y). x and y are wrapped first so callers may
// pass unwrapped deltas.
func (m *Map) Cell(x, y int) *Cell {
	return m.cells[euclidMod(y, m.Height)][euclidMod(x, m.Width)]
}

// CellAt is Cell for a Position, ignoring its facing.
func (m *Map) CellAt(p Position) *Cell {
	return m.Cell(p.X, p.Y)
}

// RandomPosition returns a uniformly random position with a random facing,
// using rng so tests can pin a seed. Grounded on the "seedable RNG function
// random_position(map)" design note.
func (m *Map) RandomPosition(rng *rand.Rand) Position {
	return Position{
		X:   rng.Intn(m.Width),
		Y:   rng.Intn(m.Height),
		Dir: Direction(rng.Intn(4)),
	}
}

// GenerateResources scatters (width*height*13)/5 resources across the map,
// each at a uniformly random cell, drawn from the weighted distribution in
// spec.md §4.1.4.
func (m *Map) GenerateResources(rng *rand.Rand) {
	total := (m.Width * m.Height * 13) / 5
	for i := 0; i < total; i++ {
		r := resourceWeights[rng.Intn(len(resourceWeights))]
		x := rng.Intn(m.Width)
		y := rng.Intn(m.Height)
		m.Cell(x, y).AddResource(r)
	}
}
