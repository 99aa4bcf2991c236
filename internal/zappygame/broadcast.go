package zappygame

import "github.com/lucas/zappy/internal/zappyworld"

// BroadcastSource computes the value 1..8 encoding the direction from which
// a broadcast sent by sender arrives at receiver, relative to receiver's
// facing, on a width x height torus. Returns 0 if sender == receiver.
//
// Grounded verbatim on original_source/shared/src/map.rs's find_broadcast_source,
// per spec.md §4.1.2.
func BroadcastSource(width, height int, sender, receiver zappyworld.Position) int {
	north := euclidMod(receiver.Y-sender.Y, height)
	east := euclidMod(sender.X-receiver.X, width)
	if north == 0 && east == 0 {
		return 0
	}
	south := euclidMod(sender.Y-receiver.Y, height)
	west := euclidMod(receiver.X-sender.X, width)

	var fromNorth bool
	var dy int
	if north <= south {
		fromNorth, dy = true, north
	} else {
		fromNorth, dy = false, south
	}

	var fromEast bool
	var dx int
	if east <= west {
		fromEast, dx = true, east
	} else {
		fromEast, dx = false, west
	}

	var sourceIfEast int
	switch {
	case dx < dy:
		if fromNorth {
			sourceIfEast = 3
		} else {
			sourceIfEast = 7
		}
	case dx == dy:
		switch {
		case fromNorth && fromEast:
			sourceIfEast = 2
		case fromNorth && !fromEast:
			sourceIfEast = 4
		case !fromNorth && !fromEast:
			sourceIfEast = 6
		default: // !fromNorth && fromEast
			sourceIfEast = 8
		}
	default: // dx > dy
		if fromEast {
			sourceIfEast = 1
		} else {
			sourceIfEast = 5
		}
	}

	var dirShift int
	switch receiver.Dir {
	case zappyworld.East:
		dirShift = 0
	case zappyworld.South:
		dirShift = 2
	case zappyworld.West:
		dirShift = 4
	case zappyworld.North:
		dirShift = 6
	}

	return ((sourceIfEast+dirShift-1)&7)+1
}

func euclidMod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
