// Package zappyconn is the connection fabric: TCP/TLS listeners for
// agents, gfx observers, and admins, the per-client I/O tasks, and the
// concurrent client registry that routes engine responses back to sockets.
//
// Grounded on the teacher's ws.Hub (DowLucas-promptlands/internal/ws/hub.go)
// for the registry-with-its-own-lock shape, and on
// original_source/server/src/connection_manager.rs and routine/*.rs for the
// per-client read/write and outbox conventions.
package zappyconn

import "sync"

// ServerCommandToClient is the sum type enqueued on a client's outbox:
// either a response to write, or an instruction to shut the connection
// down gracefully.
type ServerCommandToClient struct {
	Shutdown bool
	Line     string
}

// ClientEntry is one registered connection's outbox. Registry holds its
// own lock, distinct from the engine lock, per spec.md §5 — callers must
// always acquire the engine lock before the registry lock, never the
// reverse.
type ClientEntry struct {
	Outbox chan ServerCommandToClient
}

// Registry is the concurrent, read-mostly mapping from client id to
// outbox. Only agent tasks register in it; gfx and admin tasks do not.
type Registry struct {
	mu      sync.RWMutex
	clients map[uint16]*ClientEntry
}

func NewRegistry() *Registry {
	return &Registry{clients: make(map[uint16]*ClientEntry)}
}

// Register creates a bounded outbox for id, capacity per spec.md §4.2's
// recommended 32.
func (r *Registry) Register(id uint16, capacity int) *ClientEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry := &ClientEntry{Outbox: make(chan ServerCommandToClient, capacity)}
	r.clients[id] = entry
	return entry
}

// Unregister removes id's entry, if present.
func (r *Registry) Unregister(id uint16) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clients, id)
}

// Send enqueues a line for id's outbox, dropping it if the outbox is full
// or the client is gone — back-pressure policy from spec.md §5: an
// unresponsive client's lagging outbox is acceptable to drop, never to
// block the game loop.
func (r *Registry) Send(id uint16, line string) {
	r.mu.RLock()
	entry, ok := r.clients[id]
	r.mu.RUnlock()
	if !ok {
		return
	}
	select {
	case entry.Outbox <- ServerCommandToClient{Line: line}:
	default:
	}
}

// Shutdown enqueues a shutdown instruction for id, if present.
func (r *Registry) Shutdown(id uint16) {
	r.mu.RLock()
	entry, ok := r.clients[id]
	r.mu.RUnlock()
	if !ok {
		return
	}
	select {
	case entry.Outbox <- ServerCommandToClient{Shutdown: true}:
	default:
	}
}
