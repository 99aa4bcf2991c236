package zappyworld

// Egg is a team-owned placeholder scheduled to hatch into a spawn slot.
// Grounded on spec.md §3 and original_source/shared/src/commands.rs's
// EGG_FETCH_TIME_DELAY-based scheduling.
type Egg struct {
	Team     string
	Position Position
}
