package zappyworld

// CommandKind is the closed set of player commands. Grounded on
// original_source/shared/src/commands.rs's PlayerCommand enum and its
// delay() method; no dynamic dispatch or plugin table per spec.md §9.
type CommandKind int

const (
	CmdLeft CommandKind = iota
	CmdRight
	CmdMove
	CmdTake
	CmdPut
	CmdSee
	CmdInventory
	CmdExpel
	CmdBroadcast
	CmdIncantation
	CmdFork
	CmdConnectNbr
)

// Command is a parsed player command together with its argument, if any
// (resource name for Take/Put, free text for Broadcast).
type Command struct {
	Kind CommandKind
	Text string
}

// Delay returns the tick cost paid before this command's effect is applied,
// matching the table in spec.md §4.1 and commands.rs's delay().
func (k CommandKind) Delay() int {
	switch k {
	case CmdLeft, CmdRight, CmdMove, CmdTake, CmdPut, CmdSee, CmdExpel, CmdBroadcast:
		return 7
	case CmdInventory:
		return 1
	case CmdIncantation:
		return 0
	case CmdFork:
		return 42
	case CmdConnectNbr:
		return 0
	default:
		return 0
	}
}
