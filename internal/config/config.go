// Package config binds the server's two configuration layers: CLI flags
// (required per-run parameters) and a YAML balance file (tunable constants
// an operator can retune without recompiling).
//
// Grounded on the teacher's internal/config package (DowLucas-promptlands)
// for the CLI+YAML split, and on original_source/server/src/args.rs for the
// exact flag set.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// MaxPlayersInTeam and MaxTeams bound the CLI's -c/--clients and -n/--names
// flags, matching original_source/server/src/args.rs's clap value
// validators.
const (
	MaxPlayersInTeam = 64
	MaxTeams         = 32
)

// ServerArgs holds the CLI-supplied, per-run parameters from spec.md §6.
type ServerArgs struct {
	Port      int
	Width     int
	Height    int
	Clients   int
	Tud       int
	Names     []string
	GfxPort   int
	AdminPort int
}

// ParseFlags binds -p/--port, -x/--width, -y/--height, -c/--clients,
// -t/--tud, -n/--names, plus the implementation-defined --gfx-port and
// --admin-port, and validates them.
func ParseFlags(args []string) (*ServerArgs, error) {
	fs := pflag.NewFlagSet("zappy-server", pflag.ContinueOnError)

	port := fs.IntP("port", "p", 8080, "agent port")
	width := fs.IntP("width", "x", 0, "world width (required)")
	height := fs.IntP("height", "y", 0, "world height (required)")
	clients := fs.IntP("clients", "c", 1, "spawn slots per team")
	tud := fs.IntP("tud", "t", 100, "ticks per second")
	names := fs.StringSliceP("names", "n", nil, "team names (required, space-separated)")
	gfxPort := fs.Int("gfx-port", 4343, "gfx observer port")
	adminPort := fs.Int("admin-port", 4344, "TLS admin port")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	a := &ServerArgs{
		Port:      *port,
		Width:     *width,
		Height:    *height,
		Clients:   *clients,
		Tud:       *tud,
		Names:     *names,
		GfxPort:   *gfxPort,
		AdminPort: *adminPort,
	}
	// Positional arguments are taken as team names too, so "-n red blue"
	// yields two teams; "-n red,blue" also works.
	a.Names = append(a.Names, fs.Args()...)
	if err := a.validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *ServerArgs) validate() error {
	if a.Width < 1 || a.Height < 1 {
		return fmt.Errorf("width and height must both be >= 1")
	}
	if a.Clients < 1 || a.Clients > MaxPlayersInTeam {
		return fmt.Errorf("clients must be between 1 and %d", MaxPlayersInTeam)
	}
	if len(a.Names) < 1 || len(a.Names) > MaxTeams {
		return fmt.Errorf("names must list between 1 and %d teams", MaxTeams)
	}
	if a.Tud < 1 {
		return fmt.Errorf("tud must be >= 1")
	}
	return nil
}

// Balance holds the tunable constants spec.md calls out as "implementation
// constant" — operators may retune via a YAML file; Default() matches the
// literal values named in spec.md's glossary and §3.
type Balance struct {
	LifeTicks           int   `yaml:"life_ticks"`
	EggFetchTimeDelay   int64 `yaml:"egg_fetch_time_delay"`
	IncantationDuration int64 `yaml:"incantation_duration"`
	OutboxCapacity      int   `yaml:"outbox_capacity"`
}

// Default returns the balance matching spec.md's own constants.
func Default() Balance {
	return Balance{
		LifeTicks:           126,
		EggFetchTimeDelay:   600,
		IncantationDuration: 300,
		OutboxCapacity:      32,
	}
}

// LoadBalance reads a YAML balance file, falling back to Default() for any
// field left zero-valued in the file so a partial override file is valid.
// A missing file is not an error — Default() alone is a complete config.
func LoadBalance(path string) (Balance, error) {
	b := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return b, nil
		}
		return Balance{}, fmt.Errorf("reading balance file: %w", err)
	}
	var override Balance
	if err := yaml.Unmarshal(data, &override); err != nil {
		return Balance{}, fmt.Errorf("parsing balance file: %w", err)
	}
	if override.LifeTicks != 0 {
		b.LifeTicks = override.LifeTicks
	}
	if override.EggFetchTimeDelay != 0 {
		b.EggFetchTimeDelay = override.EggFetchTimeDelay
	}
	if override.IncantationDuration != 0 {
		b.IncantationDuration = override.IncantationDuration
	}
	if override.OutboxCapacity != 0 {
		b.OutboxCapacity = override.OutboxCapacity
	}
	return b, nil
}

// AdminCredentials parses the ADMIN_CREDENTIALS environment variable:
// comma-separated user:pass pairs, alphanumeric tokens only. Missing or
// malformed is a startup failure per spec.md §6/§7.
func AdminCredentials() (map[string]string, error) {
	raw := os.Getenv("ADMIN_CREDENTIALS")
	if raw == "" {
		return nil, fmt.Errorf("ADMIN_CREDENTIALS is not set")
	}
	creds := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed ADMIN_CREDENTIALS entry %q", pair)
		}
		user, pass := parts[0], parts[1]
		if !isAlphanumeric(user) || !isAlphanumeric(pass) {
			return nil, fmt.Errorf("ADMIN_CREDENTIALS entry %q must be alphanumeric", pair)
		}
		creds[user] = pass
	}
	if len(creds) == 0 {
		return nil, fmt.Errorf("ADMIN_CREDENTIALS contains no entries")
	}
	return creds, nil
}

func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}
