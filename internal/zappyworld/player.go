package zappyworld

// MaxCommandQueue is the maximum number of pending commands a player may
// hold, per spec.md §3 invariant 4.
const MaxCommandQueue = 10

// Player is one connected agent. Grounded on original_source/shared/src/player.rs
// and spec.md §3's Player definition.
type Player struct {
	ID                     uint16
	Team                   string
	Position               Position
	Inventory              StoneSet
	RemainingLife          int
	Level                  int
	commands               []Command
	NextFrame              int64
	IsPerformingIncantation bool
}

// NewPlayer creates a level-1 player with empty inventory and full life,
// per spec.md §3.
func NewPlayer(id uint16, team string, pos Position, lifeTicks int) *Player {
	return &Player{
		ID:            id,
		Team:          team,
		Position:      pos,
		Level:         1,
		RemainingLife: lifeTicks,
	}
}

// QueueLen reports how many commands are pending.
func (p *Player) QueueLen() int { return len(p.commands) }

// Enqueue appends a command, reporting whether the queue had room.
func (p *Player) Enqueue(c Command) bool {
	if len(p.commands) >= MaxCommandQueue {
		return false
	}
	p.commands = append(p.commands, c)
	return true
}

// PopCommand removes and returns the head command, if any.
func (p *Player) PopCommand() (Command, bool) {
	if len(p.commands) == 0 {
		return Command{}, false
	}
	c := p.commands[0]
	p.commands = p.commands[1:]
	return c, true
}

// HasPendingCommand reports whether the queue is non-empty.
func (p *Player) HasPendingCommand() bool { return len(p.commands) > 0 }
