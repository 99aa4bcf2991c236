// Package zapperr defines the server's error taxonomy: technical (I/O)
// failures that are fatal only for one connection, and logical (game)
// failures that carry a user-facing message.
//
// Grounded on the original Rust ZappyError enum (original_source/shared/src/lib.rs)
// and the teacher's GameError type (DowLucas-promptlands/internal/game/engine.go).
package zapperr

import "fmt"

// Technical represents an I/O-level failure. It is always fatal for the
// connection that produced it and never for the process.
type Technical struct {
	ClientID uint64
	Kind     string // e.g. "read", "write", "too_big", "invalid_utf8", "closed"
	Err      error
}

func (e *Technical) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("technical(%s) client=%d: %v", e.Kind, e.ClientID, e.Err)
	}
	return fmt.Sprintf("technical(%s) client=%d", e.Kind, e.ClientID)
}

func (e *Technical) Unwrap() error { return e.Err }

func ConnectionClosedByClient(clientID uint64) *Technical {
	return &Technical{ClientID: clientID, Kind: "closed"}
}

func FailedToReadFromSocket(clientID uint64, err error) *Technical {
	return &Technical{ClientID: clientID, Kind: "read", Err: err}
}

func FailedToWriteToSocket(clientID uint64, err error) *Technical {
	return &Technical{ClientID: clientID, Kind: "write", Err: err}
}

func MessageIsTooBig(clientID uint64) *Technical {
	return &Technical{ClientID: clientID, Kind: "too_big"}
}

func MessageCantBeMappedToFromUtf8(clientID uint64, err error) *Technical {
	return &Technical{ClientID: clientID, Kind: "invalid_utf8", Err: err}
}

// Logical represents a game/player-level failure. Some are connection-fatal
// (TeamDoesntExist, NoPlaceAvailable, WrongUsernameOrPassword) and carry a
// ClientMessage to send as the final line before closing; IsNotConnectedToServer
// is used internally and never reaches a socket.
type Logical struct {
	Kind string
	Team string
	ID   uint16
}

func (e *Logical) Error() string {
	switch e.Kind {
	case "team_doesnt_exist":
		return fmt.Sprintf("team %q doesn't exist", e.Team)
	case "no_place_available":
		return fmt.Sprintf("no place available for team %q", e.Team)
	case "not_connected":
		return fmt.Sprintf("player %d is not connected to server", e.ID)
	case "wrong_credentials":
		return "wrong username or password"
	default:
		return "logical error: " + e.Kind
	}
}

// ClientMessage is the exact line sent to the client before the connection
// is closed, for errors that are connection-fatal.
func (e *Logical) ClientMessage() string {
	switch e.Kind {
	case "team_doesnt_exist":
		return "Team doesn't exist. You are disconnected\n"
	case "no_place_available":
		return "Max players reached\n"
	case "wrong_credentials":
		return "Wrong username or password\n"
	default:
		return e.Error() + "\n"
	}
}

func TeamDoesntExist(team string) *Logical {
	return &Logical{Kind: "team_doesnt_exist", Team: team}
}

func NoPlaceAvailable(id uint16, team string) *Logical {
	return &Logical{Kind: "no_place_available", ID: id, Team: team}
}

func IsNotConnectedToServer(id uint16) *Logical {
	return &Logical{Kind: "not_connected", ID: id}
}

func WrongUsernameOrPassword() *Logical {
	return &Logical{Kind: "wrong_credentials"}
}
