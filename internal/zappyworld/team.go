package zappyworld

// Team tracks a team's connected members and the FIFO of spawn positions
// available for the next add_player / egg hatch.
type Team struct {
	Name          string
	Members       map[uint16]struct{}
	spawnPositions []Position
}

// NewTeam builds a team with its initial slots-per-team spawn positions.
func NewTeam(name string, initialSpawns []Position) *Team {
	return &Team{
		Name:           name,
		Members:        make(map[uint16]struct{}),
		spawnPositions: append([]Position(nil), initialSpawns...),
	}
}

// RemainingSpawns returns how many spawn positions are still available,
// the value returned by ConnectNbr and by a successful add_player.
func (t *Team) RemainingSpawns() int {
	return len(t.spawnPositions)
}

// PopSpawn removes and returns the next spawn position, if any.
func (t *Team) PopSpawn() (Position, bool) {
	if len(t.spawnPositions) == 0 {
		return Position{}, false
	}
	p := t.spawnPositions[0]
	t.spawnPositions = t.spawnPositions[1:]
	return p, true
}

// PushSpawn appends a newly hatched egg's position to the FIFO.
func (t *Team) PushSpawn(p Position) {
	t.spawnPositions = append(t.spawnPositions, p)
}

func (t *Team) AddMember(id uint16)    { t.Members[id] = struct{}{} }
func (t *Team) RemoveMember(id uint16) { delete(t.Members, id) }
func (t *Team) HasMember(id uint16) bool {
	_, ok := t.Members[id]
	return ok
}
func (t *Team) MemberCount() int { return len(t.Members) }
