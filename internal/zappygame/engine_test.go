package zappygame

import (
	"math/rand"
	"testing"

	"github.com/lucas/zappy/internal/zappyworld"
)

func newTestEngine(t *testing.T, width, height, clients int, teams []string) *Engine {
	t.Helper()
	e := NewEngine(width, height, teams, clients, 126, rand.New(rand.NewSource(42)))
	e.EggFetchTimeDelay = 600
	e.IncantationDuration = 300
	return e
}

func drainResponses(e *Engine) []Outgoing {
	var out []Outgoing
	e.Tick(&out)
	return out
}

func TestAddPlayerUnknownTeam(t *testing.T) {
	e := newTestEngine(t, 5, 5, 1, []string{"red"})
	if _, err := e.AddPlayer(1, "blue"); err == nil {
		t.Fatal("expected error for unknown team")
	}
}

func TestAddPlayerFillsSlots(t *testing.T) {
	e := newTestEngine(t, 5, 5, 1, []string{"red"})
	if _, err := e.AddPlayer(1, "red"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := e.AddPlayer(2, "red"); err == nil {
		t.Fatal("expected NoPlaceAvailable on second join")
	}
}

func TestInvariantPlayerOnExactlyOneCell(t *testing.T) {
	e := newTestEngine(t, 5, 5, 2, []string{"red"})
	e.AddPlayer(1, "red")
	e.AddPlayer(2, "red")

	count := 0
	for y := 0; y < e.Map.Height; y++ {
		for x := 0; x < e.Map.Width; x++ {
			count += e.Map.Cell(x, y).PlayerCount()
		}
	}
	if count != len(e.Players) {
		t.Fatalf("expected %d players on cells, found %d", len(e.Players), count)
	}
}

func TestMoveRoundTripRectangle(t *testing.T) {
	e := newTestEngine(t, 10, 10, 1, []string{"red"})
	e.AddPlayer(1, "red")
	p := e.Players[1]
	p.Position = zappyworld.Position{X: 5, Y: 5, Dir: zappyworld.North}
	e.Map.CellAt(p.Position).AddPlayer(1)
	start := p.Position

	dirs := []zappyworld.Direction{zappyworld.North, zappyworld.East, zappyworld.South, zappyworld.West}
	visited := map[zappyworld.Position]bool{}
	for _, d := range dirs {
		p.Position.Dir = d
		e.Map.CellAt(p.Position).RemovePlayer(1)
		p.Position = p.Position.Moved(e.Map.Width, e.Map.Height)
		e.Map.CellAt(p.Position).AddPlayer(1)
		visited[zappyworld.Position{X: p.Position.X, Y: p.Position.Y}] = true
	}
	if len(visited) != 4 {
		t.Fatalf("expected 4 distinct cells visited, got %d", len(visited))
	}
	if p.Position.X != start.X || p.Position.Y != start.Y {
		t.Fatalf("expected to return to start (%d,%d), got (%d,%d)", start.X, start.Y, p.Position.X, p.Position.Y)
	}
}

func TestTurnLeftThenRightIsIdentity(t *testing.T) {
	for _, d := range []zappyworld.Direction{zappyworld.North, zappyworld.East, zappyworld.South, zappyworld.West} {
		if d.TurnLeft().TurnRight() != d {
			t.Fatalf("TurnLeft then TurnRight changed direction from %v", d)
		}
		if d.TurnRight().TurnLeft() != d {
			t.Fatalf("TurnRight then TurnLeft changed direction from %v", d)
		}
	}
}

func TestTakePutRoundTrip(t *testing.T) {
	e := newTestEngine(t, 5, 5, 1, []string{"red"})
	e.AddPlayer(1, "red")
	p := e.Players[1]
	cell := e.Map.CellAt(p.Position)
	cell.Stones[zappyworld.Linemate] = 3
	before := cell.Stones[zappyworld.Linemate]

	var out []Outgoing
	e.applyTake(1, p, "linemate", &out)
	if p.Inventory[zappyworld.Linemate] != 1 {
		t.Fatalf("expected inventory to hold 1 linemate, got %d", p.Inventory[zappyworld.Linemate])
	}
	if cell.Stones[zappyworld.Linemate] != before-1 {
		t.Fatalf("expected cell to lose 1 linemate")
	}

	e.applyPut(1, p, "linemate", &out)
	if p.Inventory[zappyworld.Linemate] != 0 {
		t.Fatalf("expected inventory to be empty after put")
	}
	if cell.Stones[zappyworld.Linemate] != before {
		t.Fatalf("expected cell stone count restored to %d, got %d", before, cell.Stones[zappyworld.Linemate])
	}
	for _, o := range out {
		if o.Response.Kind != RespOk {
			t.Fatalf("expected Ok for both take and put, got %v", o.Response.Kind)
		}
	}
}

func TestCommandQueueCapsAtTen(t *testing.T) {
	e := newTestEngine(t, 5, 5, 1, []string{"red"})
	e.AddPlayer(1, "red")
	for i := 0; i < 10; i++ {
		if _, err := e.TakeCommand(1, zappyworld.Command{Kind: zappyworld.CmdInventory}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	resp, err := e.TakeCommand(1, zappyworld.Command{Kind: zappyworld.CmdInventory})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp == nil || resp.Kind != RespActionQueueIsFull {
		t.Fatalf("expected ActionQueueIsFull on the 11th command, got %+v", resp)
	}
}

func TestIncantationLevelOneToTwo(t *testing.T) {
	e := newTestEngine(t, 5, 5, 1, []string{"red"})
	e.AddPlayer(1, "red")
	p := e.Players[1]
	// Incantation requires at least 300 ticks of remaining life; a fresh
	// player only has 126.
	p.RemainingLife = 1000
	cell := e.Map.CellAt(p.Position)
	cell.Stones[zappyworld.Linemate] = 1

	e.TakeCommand(1, zappyworld.Command{Kind: zappyworld.CmdIncantation})

	var out []Outgoing
	e.Tick(&out)

	foundInProgress := false
	for _, o := range out {
		if o.PlayerID == 1 && o.Response.Kind == RespIncantationInProgress {
			foundInProgress = true
		}
	}
	if !foundInProgress {
		t.Fatalf("expected IncantationInProgress response, got %+v", out)
	}
	if cell.Stones[zappyworld.Linemate] != 0 {
		t.Fatalf("expected linemate consumed, still has %d", cell.Stones[zappyworld.Linemate])
	}
	if !p.IsPerformingIncantation {
		t.Fatal("expected player to be marked performing incantation")
	}

	for i := 0; i < int(e.IncantationDuration)-1; i++ {
		var drained []Outgoing
		e.Tick(&drained)
	}

	var final []Outgoing
	e.Tick(&final)
	if p.Level != 2 {
		t.Fatalf("expected level 2 after incantation completes, got %d", p.Level)
	}
	foundLevel := false
	for _, o := range final {
		if o.PlayerID == 1 && o.Response.Kind == RespCurrentLevel && o.Response.Level == 2 {
			foundLevel = true
		}
	}
	if !foundLevel {
		t.Fatalf("expected CurrentLevel(2) response, got %+v", final)
	}
}

func TestStarvationEmitsMortAndRemoves(t *testing.T) {
	e := newTestEngine(t, 5, 5, 1, []string{"red"})
	e.AddPlayer(1, "red")
	e.Players[1].RemainingLife = 1

	var out []Outgoing
	e.Tick(&out) // decrements life to 0
	var out2 []Outgoing
	e.Tick(&out2) // should see remaining_life == 0 and emit Mort

	found := false
	for _, o := range out2 {
		if o.PlayerID == 1 && o.Response.Kind == RespMort {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected Mort response, got %+v", out2)
	}
	if _, alive := e.Players[1]; alive {
		t.Fatal("expected dead player removed from engine")
	}
}

func TestFrameMonotonic(t *testing.T) {
	e := newTestEngine(t, 5, 5, 1, []string{"red"})
	var last int64
	for i := 0; i < 5; i++ {
		var out []Outgoing
		e.Tick(&out)
		if e.Frame <= last {
			t.Fatalf("frame did not strictly increase: %d -> %d", last, e.Frame)
		}
		last = e.Frame
	}
}
