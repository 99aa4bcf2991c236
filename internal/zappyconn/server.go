package zappyconn

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/lucas/zappy/internal/config"
	"github.com/lucas/zappy/internal/zappygame"
)

// Server is the single owner of the engine's exclusive lock. Every
// component that touches the engine — agent tasks, the game loop, the gfx
// loop — goes through Server's locked accessors. Per spec.md §5, the
// registry's own lock is always acquired after the engine lock, never
// before.
type Server struct {
	mu     sync.Mutex
	Engine *zappygame.Engine

	Registry *Registry
	Balance  config.Balance
	Log      *logrus.Logger
}

func NewServer(engine *zappygame.Engine, balance config.Balance, log *logrus.Logger) *Server {
	return &Server{
		Engine:   engine,
		Registry: NewRegistry(),
		Balance:  balance,
		Log:      log,
	}
}

// WithEngine runs fn with the engine lock held. Every engine mutation in
// this package goes through this one chokepoint.
func (s *Server) WithEngine(fn func(*zappygame.Engine)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.Engine)
}

// Tick runs one engine frame and dispatches every resulting response to
// the registry, implementing the game loop step described in spec.md
// §4.4 steps 1-2.
func (s *Server) Tick() {
	var out []zappygame.Outgoing
	s.mu.Lock()
	s.Engine.Tick(&out)
	s.mu.Unlock()

	for _, o := range out {
		s.Registry.Send(o.PlayerID, o.Response.Line())
	}
}
