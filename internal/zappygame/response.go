package zappygame

import (
	"fmt"
	"strings"

	"github.com/lucas/zappy/internal/zappyworld"
)

// ResponseKind is the closed set of lines the engine can emit to a client,
// per the table in spec.md §6.
type ResponseKind int

const (
	RespOk ResponseKind = iota
	RespKo
	RespSee
	RespInventory
	RespValue
	RespMessage
	RespMovement
	RespIncantationInProgress
	RespCurrentLevel
	RespMort
	RespActionQueueIsFull
)

// Response is one line to be sent to a player, produced by the engine.
// Fields are populated according to Kind; unused fields are zero.
type Response struct {
	Kind   ResponseKind
	Cells  []string // See
	Inv    []string // Inventory, pre-rendered "<name> <count>" tokens
	Value  string    // Value
	Dir    int       // Message: broadcast source 1..8
	Text   string    // Message: broadcast text
	MoveTo zappyworld.Direction // Movement
	Level  int       // CurrentLevel
}

// Line renders the response to its canonical wire form (spec.md §6). These
// are the stable textual forms; implementations may localize but must stay
// stable across sessions, which is why Open Question D.3 (see SPEC_FULL.md)
// pins Message/Movement to one rendering here.
func (r Response) Line() string {
	switch r.Kind {
	case RespOk:
		return "ok"
	case RespKo:
		return "ko"
	case RespSee:
		return "{ " + strings.Join(r.Cells, ", ") + " }"
	case RespInventory:
		return "{ " + strings.Join(r.Inv, ", ") + " }"
	case RespValue:
		return r.Value
	case RespMessage:
		return fmt.Sprintf("message %d, %s", r.Dir, r.Text)
	case RespMovement:
		return r.MoveTo.String()
	case RespIncantationInProgress:
		return "elevation en cours"
	case RespCurrentLevel:
		return fmt.Sprintf("niveau actuel : %d", r.Level)
	case RespMort:
		return "mort"
	case RespActionQueueIsFull:
		return "action queue is full"
	default:
		return ""
	}
}

func Ok() Response  { return Response{Kind: RespOk} }
func Ko() Response  { return Response{Kind: RespKo} }
func Mort() Response { return Response{Kind: RespMort} }
func ActionQueueIsFull() Response { return Response{Kind: RespActionQueueIsFull} }
func Value(s string) Response { return Response{Kind: RespValue, Value: s} }
func CurrentLevel(level int) Response { return Response{Kind: RespCurrentLevel, Level: level} }
func IncantationInProgress() Response { return Response{Kind: RespIncantationInProgress} }
func Movement(dir zappyworld.Direction) Response {
	return Response{Kind: RespMovement, MoveTo: dir}
}
func Message(source int, text string) Response {
	return Response{Kind: RespMessage, Dir: source, Text: text}
}
func See(cells []string) Response { return Response{Kind: RespSee, Cells: cells} }
func Inventory(tokens []string) Response { return Response{Kind: RespInventory, Inv: tokens} }

// Outgoing pairs a player id with the response destined for it.
type Outgoing struct {
	PlayerID uint16
	Response Response
}
