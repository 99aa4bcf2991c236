package zappygame

import (
	"strconv"
	"strings"

	"github.com/lucas/zappy/internal/zappyworld"
)

// relativeToWorld rotates a player-relative offset (i, -k) — i.e. i steps
// sideways, k steps ahead — into world-space (dx, dy) according to facing.
// North is "up" (negative y); ahead of North is -y, ahead of East is +x,
// ahead of South is +y, ahead of West is -x. Sideways for each facing
// follows the same right-hand rotation as Direction.TurnRight.
func relativeToWorld(dir zappyworld.Direction, i, k int) (int, int) {
	switch dir {
	case zappyworld.North:
		return i, -k
	case zappyworld.East:
		return k, i
	case zappyworld.South:
		return -i, k
	default: // West
		return -k, -i
	}
}

// ComputeSee produces the (level+1)^2 cell descriptions for a player at pos
// with the given level, per spec.md §4.1.1. selfID is excluded from the
// "player" tokens only on the viewer's own cell.
func ComputeSee(m *zappyworld.Map, pos zappyworld.Position, level int, selfID uint16) []string {
	cells := make([]string, 0, (level+1)*(level+1))
	for k := 0; k <= level; k++ {
		for i := -k; i <= k; i++ {
			dx, dy := relativeToWorld(pos.Dir, i, k)
			target := pos.Translated(dx, dy, m.Width, m.Height)
			cell := m.CellAt(target)
			isOwnCell := target.X == pos.X && target.Y == pos.Y
			cells = append(cells, describeCell(cell, selfID, isOwnCell))
		}
	}
	return cells
}

// describeCell matches original_source/shared/src/cell.rs's get_resources_copy
// order: nourriture before stones. isOwnCell is computed by the caller from
// the wrapped absolute position, not the pre-rotation relative offset, since
// a torus small enough relative to a player's level can wrap several
// relative offsets onto the viewer's own cell.
func describeCell(cell *zappyworld.Cell, selfID uint16, isOwnCell bool) string {
	var tokens []string
	for _, id := range cell.PlayerIDs() {
		if isOwnCell && id == selfID {
			continue
		}
		tokens = append(tokens, "player")
	}
	for n := 0; n < cell.Nourriture; n++ {
		tokens = append(tokens, "nourriture")
	}
	for k := zappyworld.StoneKind(0); k < zappyworld.StoneKindCount; k++ {
		for n := 0; n < cell.Stones[k]; n++ {
			tokens = append(tokens, k.String())
		}
	}
	return strings.Join(tokens, " ")
}

// InventoryTokens renders a player's inventory as the ordered token list
// for the Inventory response: nourriture first, then each stone 0..5 in
// canonical order, per spec.md §4.1.
func InventoryTokens(remainingLife int, inv zappyworld.StoneSet) []string {
	tokens := make([]string, 0, zappyworld.StoneKindCount+1)
	tokens = append(tokens, "nourriture "+strconv.Itoa(remainingLife))
	for k := zappyworld.StoneKind(0); k < zappyworld.StoneKindCount; k++ {
		tokens = append(tokens, k.String()+" "+strconv.Itoa(inv[k]))
	}
	return tokens
}
