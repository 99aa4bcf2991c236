// Package zappygame owns the engine: command parsing, the tick loop, vision,
// broadcast, incantation scheduling, and per-player response rendering.
package zappygame

import (
	"fmt"
	"strings"

	"github.com/lucas/zappy/internal/zappyworld"
)

// ParseCommand parses one trimmed line of agent input into a Command.
// Keywords are case-insensitive and accept both French and English aliases,
// per spec.md §4.2.4. Exactly one space separates keyword from argument;
// embedded spaces in the argument are allowed only for broadcast.
func ParseCommand(line string) (zappyworld.Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return zappyworld.Command{}, fmt.Errorf("empty command")
	}
	keyword := line
	arg := ""
	if idx := strings.IndexByte(line, ' '); idx >= 0 {
		keyword = line[:idx]
		arg = line[idx+1:]
	}
	keyword = strings.ToLower(keyword)

	switch keyword {
	case "avance", "move":
		return zappyworld.Command{Kind: zappyworld.CmdMove}, nil
	case "droite", "right":
		return zappyworld.Command{Kind: zappyworld.CmdRight}, nil
	case "gauche", "left":
		return zappyworld.Command{Kind: zappyworld.CmdLeft}, nil
	case "voir", "see":
		return zappyworld.Command{Kind: zappyworld.CmdSee}, nil
	case "inventaire", "inv", "inventory":
		return zappyworld.Command{Kind: zappyworld.CmdInventory}, nil
	case "prend", "take":
		if arg == "" {
			return zappyworld.Command{}, fmt.Errorf("missing resource name")
		}
		if strings.ContainsRune(arg, ' ') {
			return zappyworld.Command{}, fmt.Errorf("resource name must not contain spaces")
		}
		return zappyworld.Command{Kind: zappyworld.CmdTake, Text: strings.ToLower(arg)}, nil
	case "pose", "put":
		if arg == "" {
			return zappyworld.Command{}, fmt.Errorf("missing resource name")
		}
		if strings.ContainsRune(arg, ' ') {
			return zappyworld.Command{}, fmt.Errorf("resource name must not contain spaces")
		}
		return zappyworld.Command{Kind: zappyworld.CmdPut, Text: strings.ToLower(arg)}, nil
	case "expulse", "expel", "exp":
		return zappyworld.Command{Kind: zappyworld.CmdExpel}, nil
	case "broadcast":
		return zappyworld.Command{Kind: zappyworld.CmdBroadcast, Text: arg}, nil
	case "incantation":
		return zappyworld.Command{Kind: zappyworld.CmdIncantation}, nil
	case "fork":
		return zappyworld.Command{Kind: zappyworld.CmdFork}, nil
	case "connect_nbr", "cn":
		return zappyworld.Command{Kind: zappyworld.CmdConnectNbr}, nil
	default:
		return zappyworld.Command{}, fmt.Errorf("unknown command %q", line)
	}
}
