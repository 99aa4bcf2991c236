package zappygame

import (
	"strconv"

	"github.com/lucas/zappy/internal/zappyworld"
)

type pendingExec struct {
	id  uint16
	cmd zappyworld.Command
}

// Tick advances the engine by one frame, implementing the algorithm in
// spec.md §4.1's "Tick algorithm" section 1-6, and appends every
// (player_id, response) produced to out.
//
// Grounded on the teacher's processTick (DowLucas-promptlands/internal/game/tick.go)
// for the overall lock-snapshot-apply shape, and on
// original_source/server/src/game_engine.rs's tick() for the exact
// ordering of death, command execution, egg hatching, and incantation
// completion.
func (e *Engine) Tick(out *[]Outgoing) {
	e.Frame++

	ids := e.orderedPlayerIDs()
	var dead []uint16
	var pending []pendingExec

	// Step 2: decrement life, pop due commands.
	for _, id := range ids {
		p := e.Players[id]
		if p.RemainingLife == 0 {
			*out = append(*out, Outgoing{PlayerID: id, Response: Mort()})
			dead = append(dead, id)
			continue
		}
		p.RemainingLife--
		if p.HasPendingCommand() && e.Frame >= p.NextFrame {
			c, _ := p.PopCommand()
			p.NextFrame = e.Frame + int64(c.Kind.Delay())
			pending = append(pending, pendingExec{id: id, cmd: c})
		}
	}

	// Step 3: remove dead players.
	for _, id := range dead {
		e.RemovePlayer(id)
	}

	// Step 4: execute due commands, in the order they became due.
	for _, pe := range pending {
		p, ok := e.Players[pe.id]
		if !ok {
			continue // removed mid-tick (e.g. by an earlier expel causing death is not modeled; guards future extension)
		}
		if p.IsPerformingIncantation {
			*out = append(*out, Outgoing{PlayerID: pe.id, Response: IncantationInProgress()})
			continue
		}
		e.apply(pe.id, pe.cmd, out)
	}

	// Step 5: egg hatching.
	if eggs, ok := e.eggs[e.Frame]; ok {
		for _, egg := range eggs {
			team, ok := e.Teams[egg.Team]
			if !ok {
				continue
			}
			entry := e.Map.CellAt(egg.Position).EggEntry(egg.Team)
			if entry.Unhatched < 1 {
				continue
			}
			entry.Unhatched--
			entry.Hatched++
			team.PushSpawn(egg.Position)
		}
		delete(e.eggs, e.Frame)
	}

	// Step 6: incantation completion.
	if ids, ok := e.incantation[e.Frame]; ok {
		for _, id := range ids {
			p, ok := e.Players[id]
			if !ok {
				continue
			}
			p.IsPerformingIncantation = false
			if p.Level < zappyworld.MaxLevel {
				p.Level++
			}
			*out = append(*out, Outgoing{PlayerID: id, Response: CurrentLevel(p.Level)})
		}
		delete(e.incantation, e.Frame)
	}
}

// apply executes one due command for player id and appends whatever
// responses it produces (to id and possibly to other players, e.g. Expel
// victims and Broadcast receivers) to out.
func (e *Engine) apply(id uint16, cmd zappyworld.Command, out *[]Outgoing) {
	p := e.Players[id]

	switch cmd.Kind {
	case zappyworld.CmdLeft:
		p.Position.Dir = p.Position.Dir.TurnLeft()
		*out = append(*out, Outgoing{id, Ok()})

	case zappyworld.CmdRight:
		p.Position.Dir = p.Position.Dir.TurnRight()
		*out = append(*out, Outgoing{id, Ok()})

	case zappyworld.CmdMove:
		e.Map.CellAt(p.Position).RemovePlayer(id)
		p.Position = p.Position.Moved(e.Map.Width, e.Map.Height)
		e.Map.CellAt(p.Position).AddPlayer(id)
		*out = append(*out, Outgoing{id, Ok()})

	case zappyworld.CmdTake:
		e.applyTake(id, p, cmd.Text, out)

	case zappyworld.CmdPut:
		e.applyPut(id, p, cmd.Text, out)

	case zappyworld.CmdSee:
		*out = append(*out, Outgoing{id, See(ComputeSee(e.Map, p.Position, p.Level, id))})

	case zappyworld.CmdInventory:
		*out = append(*out, Outgoing{id, Inventory(InventoryTokens(p.RemainingLife, p.Inventory))})

	case zappyworld.CmdExpel:
		e.applyExpel(id, p, out)

	case zappyworld.CmdBroadcast:
		e.applyBroadcast(id, p, cmd.Text, out)

	case zappyworld.CmdIncantation:
		e.applyIncantation(id, p, out)

	case zappyworld.CmdFork:
		e.applyFork(id, p, out)

	case zappyworld.CmdConnectNbr:
		team := e.Teams[p.Team]
		*out = append(*out, Outgoing{id, Value(strconv.Itoa(team.RemainingSpawns()))})
	}
}

func (e *Engine) applyTake(id uint16, p *zappyworld.Player, name string, out *[]Outgoing) {
	r, ok := zappyworld.ResourceFromName(name)
	if !ok {
		*out = append(*out, Outgoing{id, Ko()})
		return
	}
	cell := e.Map.CellAt(p.Position)
	if !cell.RemoveResource(r) {
		*out = append(*out, Outgoing{id, Ko()})
		return
	}
	if r.IsStone {
		p.Inventory[r.Stone]++
	} else {
		p.RemainingLife += e.LifeTicks
	}
	*out = append(*out, Outgoing{id, Ok()})
}

func (e *Engine) applyPut(id uint16, p *zappyworld.Player, name string, out *[]Outgoing) {
	r, ok := zappyworld.ResourceFromName(name)
	if !ok {
		*out = append(*out, Outgoing{id, Ko()})
		return
	}
	if r.IsStone {
		if p.Inventory[r.Stone] <= 0 {
			*out = append(*out, Outgoing{id, Ko()})
			return
		}
		p.Inventory[r.Stone]--
	} else {
		if p.RemainingLife < e.LifeTicks {
			*out = append(*out, Outgoing{id, Ko()})
			return
		}
		p.RemainingLife -= e.LifeTicks
	}
	e.Map.CellAt(p.Position).AddResource(r)
	*out = append(*out, Outgoing{id, Ok()})
}

func (e *Engine) applyExpel(id uint16, p *zappyworld.Player, out *[]Outgoing) {
	cell := e.Map.CellAt(p.Position)
	for _, victimID := range cell.PlayerIDs() {
		if victimID == id {
			continue
		}
		victim := e.Players[victimID]
		cell.RemovePlayer(victimID)
		dx, dy := p.Position.Dir.DxDy()
		victim.Position = victim.Position.Translated(dx, dy, e.Map.Width, e.Map.Height)
		e.Map.CellAt(victim.Position).AddPlayer(victimID)
		*out = append(*out, Outgoing{victimID, Movement(p.Position.Dir.Opposite())})
	}
	*out = append(*out, Outgoing{id, Ok()})
}

func (e *Engine) applyBroadcast(id uint16, p *zappyworld.Player, text string, out *[]Outgoing) {
	for _, otherID := range e.orderedPlayerIDs() {
		if otherID == id {
			*out = append(*out, Outgoing{id, Ok()})
			continue
		}
		other := e.Players[otherID]
		source := BroadcastSource(e.Map.Width, e.Map.Height, p.Position, other.Position)
		*out = append(*out, Outgoing{otherID, Message(source, text)})
	}
}

func (e *Engine) applyFork(id uint16, p *zappyworld.Player, out *[]Outgoing) {
	hatchFrame := e.Frame + e.EggFetchTimeDelay
	e.eggs[hatchFrame] = append(e.eggs[hatchFrame], zappyworld.Egg{Team: p.Team, Position: p.Position})
	e.Map.CellAt(p.Position).EggEntry(p.Team).Unhatched++
	*out = append(*out, Outgoing{id, Ok()})
}

func (e *Engine) applyIncantation(id uint16, p *zappyworld.Player, out *[]Outgoing) {
	if p.RemainingLife < int(e.IncantationDuration) {
		*out = append(*out, Outgoing{id, Ko()})
		return
	}
	recipe, ok := zappyworld.RecipeForLevel(p.Level)
	if !ok {
		*out = append(*out, Outgoing{id, Ko()})
		return
	}

	cell := e.Map.CellAt(p.Position)
	participants := make([]uint16, 0, recipe.Participants)
	for _, otherID := range cell.PlayerIDs() {
		other := e.Players[otherID]
		if other.Level == p.Level && other.RemainingLife >= int(e.IncantationDuration) {
			participants = append(participants, otherID)
		}
	}

	if len(participants) < recipe.Participants || !cell.CanConsumeStones(recipe.Stones) {
		*out = append(*out, Outgoing{id, Ko()})
		return
	}

	cell.ConsumeStones(recipe.Stones)
	completeFrame := e.Frame + e.IncantationDuration
	for _, pid := range participants {
		e.Players[pid].IsPerformingIncantation = true
		e.incantation[completeFrame] = append(e.incantation[completeFrame], pid)
		*out = append(*out, Outgoing{pid, IncantationInProgress()})
	}
}
