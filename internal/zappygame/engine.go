package zappygame

import (
	"math/rand"
	"sort"

	"github.com/lucas/zappy/internal/zapperr"
	"github.com/lucas/zappy/internal/zappyworld"
)

// Engine owns the whole world state: map, players, teams, and the
// scheduled-effect tables for eggs and incantations. All mutation happens
// behind the caller's lock; Engine itself does no locking (the connection
// fabric and game loop serialize access, per spec.md §5).
//
// Grounded on the teacher's Engine type (DowLucas-promptlands/internal/game/engine.go)
// generalized from an LLM-driven tick loop to Zappy's command-driven one.
type Engine struct {
	Map   *zappyworld.Map
	Teams map[string]*zappyworld.Team
	Players map[uint16]*zappyworld.Player

	eggs        map[int64][]zappyworld.Egg
	incantation map[int64][]uint16

	Frame int64

	LifeTicks             int
	EggFetchTimeDelay     int64
	IncantationDuration   int64

	rng *rand.Rand

	nextClientID uint16
}

// NewEngine builds an empty world with the given teams and slots-per-team,
// generates initial resources, allocates spawn positions, and seeds one
// hatched egg per spawn position, per spec.md §4.1's `new` contract.
func NewEngine(width, height int, teamNames []string, slotsPerTeam int, lifeTicks int, rng *rand.Rand) *Engine {
	m := zappyworld.NewMap(width, height)
	m.GenerateResources(rng)

	e := &Engine{
		Map:                 m,
		Teams:               make(map[string]*zappyworld.Team),
		Players:             make(map[uint16]*zappyworld.Player),
		eggs:                make(map[int64][]zappyworld.Egg),
		incantation:         make(map[int64][]uint16),
		LifeTicks:           lifeTicks,
		EggFetchTimeDelay:   600,
		IncantationDuration: 300,
		rng:                 rng,
	}

	for _, name := range teamNames {
		spawns := make([]zappyworld.Position, slotsPerTeam)
		for i := 0; i < slotsPerTeam; i++ {
			spawns[i] = m.RandomPosition(rng)
		}
		e.Teams[name] = zappyworld.NewTeam(name, spawns)
		for _, p := range spawns {
			m.CellAt(p).EggEntry(name).Hatched++
		}
	}

	return e
}

// NextClientID returns a fresh monotonic id for a new connection. The
// connection fabric takes each agent's id from it before calling AddPlayer,
// and the same id keys that agent's registry outbox.
func (e *Engine) NextClientID() uint16 {
	e.nextClientID++
	return e.nextClientID
}

// AddPlayer implements spec.md §4.1's add_player: consumes the team's next
// spawn position, creates the Player, adds it to its cell, and decrements
// the cell's hatched egg count for that team.
func (e *Engine) AddPlayer(id uint16, teamName string) (remainingSlots int, err error) {
	team, ok := e.Teams[teamName]
	if !ok {
		return 0, zapperr.TeamDoesntExist(teamName)
	}
	pos, ok := team.PopSpawn()
	if !ok {
		return 0, zapperr.NoPlaceAvailable(id, teamName)
	}

	player := zappyworld.NewPlayer(id, teamName, pos, e.LifeTicks)
	e.Players[id] = player
	team.AddMember(id)
	e.Map.CellAt(pos).AddPlayer(id)
	e.Map.CellAt(pos).EggEntry(teamName).Hatched--

	return team.RemainingSpawns(), nil
}

// RemovePlayer is idempotent: it removes the player from its cell and team.
func (e *Engine) RemovePlayer(id uint16) {
	player, ok := e.Players[id]
	if !ok {
		return
	}
	e.Map.CellAt(player.Position).RemovePlayer(id)
	if team, ok := e.Teams[player.Team]; ok {
		team.RemoveMember(id)
	}
	delete(e.Players, id)
}

// TakeCommand implements spec.md §4.1's take_command: appends to the
// player's queue, or reports ActionQueueIsFull without treating it as an
// error.
func (e *Engine) TakeCommand(id uint16, cmd zappyworld.Command) (*Response, error) {
	player, ok := e.Players[id]
	if !ok {
		return nil, zapperr.IsNotConnectedToServer(id)
	}
	if !player.Enqueue(cmd) {
		r := ActionQueueIsFull()
		return &r, nil
	}
	return nil, nil
}

// orderedPlayerIDs returns player ids in ascending order, the deterministic
// iteration order spec.md §4.1 requires throughout the tick.
func (e *Engine) orderedPlayerIDs() []uint16 {
	ids := make([]uint16, 0, len(e.Players))
	for id := range e.Players {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
