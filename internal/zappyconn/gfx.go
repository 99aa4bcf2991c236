package zappyconn

import (
	"encoding/json"
	"net"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"

	"github.com/lucas/zappy/internal/zappygame"
)

const gfxSnapshotInterval = 20 * time.Millisecond

// gfxTileSnapshot and gfxSnapshot mirror the GFX wire protocol named in
// spec.md §6: stable field names, map/players/teams. The exact schema is
// not fixed by spec.md; this shape satisfies its field-name requirement.
type gfxTileSnapshot struct {
	Players    []uint16 `json:"players"`
	Stones     [6]int   `json:"stones"`
	Nourriture int      `json:"nourriture"`
}

type gfxMapSnapshot struct {
	Field  [][]gfxTileSnapshot `json:"field"`
	Width  int                 `json:"width"`
	Height int                 `json:"height"`
}

type gfxPlayerSnapshot struct {
	Team  string `json:"team"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Dir   string `json:"dir"`
	Level int    `json:"level"`
	Life  int    `json:"life"`
}

type gfxTeamSnapshot struct {
	Color   string `json:"color"`
	Members int    `json:"members"`
}

type gfxSnapshot struct {
	Map     gfxMapSnapshot               `json:"map"`
	Players map[uint16]gfxPlayerSnapshot `json:"players"`
	Teams   map[string]gfxTeamSnapshot   `json:"teams"`
}

// HandleGfx implements the gfx observer task of spec.md §4.3: every 20ms,
// snapshot engine state under the engine lock, and emit only when a cheap
// hash of the serialized form differs from the last emission.
//
// Grounded on original_source/server/src/routine/gfx.rs's gfx_routine.
func HandleGfx(conn net.Conn, s *Server) {
	defer conn.Close()
	log := s.Log.WithFields(logrus.Fields{"remote": conn.RemoteAddr().String(), "task": "gfx"})

	var lastHash uint64
	haveLast := false

	ticker := time.NewTicker(gfxSnapshotInterval)
	defer ticker.Stop()

	for range ticker.C {
		snap := s.buildGfxSnapshot()
		data, err := json.Marshal(snap)
		if err != nil {
			log.WithError(err).Error("failed to marshal gfx snapshot")
			continue
		}
		h := xxhash.Sum64(data)
		if haveLast && h == lastHash {
			continue
		}
		lastHash = h
		haveLast = true
		if _, err := conn.Write(append(data, '\n')); err != nil {
			log.WithError(err).Debug("gfx observer disconnected")
			return
		}
	}
}

func (s *Server) buildGfxSnapshot() gfxSnapshot {
	var snap gfxSnapshot
	s.WithEngine(func(e *zappygame.Engine) {
		field := make([][]gfxTileSnapshot, e.Map.Height)
		for y := 0; y < e.Map.Height; y++ {
			row := make([]gfxTileSnapshot, e.Map.Width)
			for x := 0; x < e.Map.Width; x++ {
				cell := e.Map.Cell(x, y)
				row[x] = gfxTileSnapshot{
					Players:    cell.PlayerIDs(),
					Stones:     cell.Stones,
					Nourriture: cell.Nourriture,
				}
			}
			field[y] = row
		}

		players := make(map[uint16]gfxPlayerSnapshot, len(e.Players))
		for id, p := range e.Players {
			players[id] = gfxPlayerSnapshot{
				Team:  p.Team,
				X:     p.Position.X,
				Y:     p.Position.Y,
				Dir:   p.Position.Dir.String(),
				Level: p.Level,
				Life:  p.RemainingLife,
			}
		}

		teams := make(map[string]gfxTeamSnapshot, len(e.Teams))
		for name, team := range e.Teams {
			teams[name] = gfxTeamSnapshot{Color: teamColor(name), Members: team.MemberCount()}
		}

		snap = gfxSnapshot{
			Map:     gfxMapSnapshot{Field: field, Width: e.Map.Width, Height: e.Map.Height},
			Players: players,
			Teams:   teams,
		}
	})
	return snap
}

// teamColor deterministically derives a display color from the team name
// so observers get a stable palette without a separate color-assignment
// table.
func teamColor(name string) string {
	h := xxhash.Sum64String(name)
	palette := []string{"red", "blue", "green", "yellow", "purple", "orange", "cyan", "magenta"}
	return palette[h%uint64(len(palette))]
}
