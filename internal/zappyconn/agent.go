package zappyconn

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/lucas/zappy/internal/zapperr"
	"github.com/lucas/zappy/internal/zappygame"
)

// maxLineBytes mirrors original_source/server/src/connection_manager.rs's
// 1024-byte read buffer: a line longer than this is MessageIsTooBig.
const maxLineBytes = 1024

// HandleAgent implements the per-connection agent task of spec.md §4.2.1:
// handshake, team handshake, then the read/outbox multiplexer.
func HandleAgent(conn net.Conn, s *Server) {
	defer conn.Close()

	id := s.registerAgentID()
	entry := s.Registry.Register(id, s.Balance.OutboxCapacity)
	defer s.Registry.Unregister(id)

	log := s.Log.WithFields(logrus.Fields{"client_id": id, "remote": conn.RemoteAddr().String()})

	writeLine(conn, "BIENVENUE")

	reader := bufio.NewReader(conn)
	teamLine, err := readLine(reader, uint64(id))
	if err != nil {
		log.WithError(err).Debug("agent disconnected before sending team name")
		return
	}
	team := strings.TrimSpace(teamLine)

	var addErr error
	var remaining int
	var width, height int
	s.WithEngine(func(e *zappygame.Engine) {
		remaining, addErr = e.AddPlayer(id, team)
		width, height = e.Map.Width, e.Map.Height
	})
	if addErr != nil {
		if logical, ok := addErr.(*zapperr.Logical); ok {
			writeLine(conn, strings.TrimSuffix(logical.ClientMessage(), "\n"))
		}
		log.WithError(addErr).Info("agent rejected")
		return
	}

	writeLine(conn, fmt.Sprintf("%d", remaining))
	writeLine(conn, fmt.Sprintf("%d %d", width, height))

	defer s.WithEngine(func(e *zappygame.Engine) { e.RemovePlayer(id) })

	done := make(chan struct{})
	go agentReadLoop(conn, reader, s, id, log, done)

	for {
		select {
		case cmd, ok := <-entry.Outbox:
			if !ok {
				return
			}
			if cmd.Shutdown {
				writeLine(conn, "Server is shutting down the connection.")
				return
			}
			if err := writeLine(conn, cmd.Line); err != nil {
				log.WithError(zapperr.FailedToWriteToSocket(uint64(id), err)).Debug("agent write failed")
				return
			}
		case <-done:
			return
		}
	}
}

func agentReadLoop(conn net.Conn, reader *bufio.Reader, s *Server, id uint16, log *logrus.Entry, done chan struct{}) {
	defer close(done)
	for {
		line, err := readLine(reader, uint64(id))
		if err != nil {
			log.WithError(err).Debug("agent read ended")
			return
		}
		if !utf8.ValidString(line) {
			err := zapperr.MessageCantBeMappedToFromUtf8(uint64(id), fmt.Errorf("invalid utf8 line"))
			log.WithError(err).Warn("agent sent invalid utf8, closing connection")
			return
		}
		cmd, parseErr := zappygame.ParseCommand(line)
		if parseErr != nil {
			writeLine(conn, fmt.Sprintf("Unknown command %q", strings.TrimSpace(line)))
			continue
		}
		var resp *zappygame.Response
		s.WithEngine(func(e *zappygame.Engine) {
			resp, _ = e.TakeCommand(id, cmd)
		})
		if resp != nil {
			writeLine(conn, resp.Line())
		}
	}
}

// readLine reads one LF-terminated line, enforcing the maxLineBytes cap
// from original_source's connection manager.
func readLine(r *bufio.Reader, clientID uint64) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return "", zapperr.ConnectionClosedByClient(clientID)
		}
		return "", zapperr.FailedToReadFromSocket(clientID, err)
	}
	if len(line) > maxLineBytes {
		return "", zapperr.MessageIsTooBig(clientID)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func writeLine(conn net.Conn, line string) error {
	_, err := conn.Write([]byte(line + "\n"))
	return err
}

func (s *Server) registerAgentID() uint16 {
	var id uint16
	s.WithEngine(func(e *zappygame.Engine) {
		id = e.NextClientID()
	})
	return id
}
