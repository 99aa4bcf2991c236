package zappyworld

// StoneKind enumerates the six stone kinds in their canonical wire order.
// Grounded on original_source/shared/src/resource.rs's Stone enum.
type StoneKind int

const (
	Deraumere StoneKind = iota
	Linemate
	Mendiane
	Phiras
	Sibur
	Thystame
	StoneKindCount
)

var stoneNames = [StoneKindCount]string{
	Deraumere: "deraumere",
	Linemate:  "linemate",
	Mendiane:  "mendiane",
	Phiras:    "phiras",
	Sibur:     "sibur",
	Thystame:  "thystame",
}

func (k StoneKind) String() string {
	if k < 0 || k >= StoneKindCount {
		return "unknown"
	}
	return stoneNames[k]
}

// Resource is the sum type Stone(kind) | Nourriture.
type Resource struct {
	IsStone bool
	Stone   StoneKind
}

func StoneResource(kind StoneKind) Resource { return Resource{IsStone: true, Stone: kind} }

var Nourriture = Resource{IsStone: false}

// Name returns the canonical lowercase wire name.
func (r Resource) Name() string {
	if !r.IsStone {
		return "nourriture"
	}
	return r.Stone.String()
}

// ResourceFromName parses the canonical lowercase name (no aliasing here;
// the single-letter display alias is a gfx/console concern out of scope
// for the wire protocol per spec.md §3).
func ResourceFromName(name string) (Resource, bool) {
	if name == "nourriture" {
		return Nourriture, true
	}
	for i := StoneKind(0); i < StoneKindCount; i++ {
		if stoneNames[i] == name {
			return StoneResource(i), true
		}
	}
	return Resource{}, false
}

// StoneSet is a count per stone kind, used for inventories and recipes.
type StoneSet [StoneKindCount]int
