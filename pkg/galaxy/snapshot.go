package galaxy

import (
	"encoding/json"
	"io"
	"sort"
)

// System is one star system node in the starlane graph.
type System struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Star     StarType `json:"star"`
	Planets  []int    `json:"planets"`
	Adjacent []int    `json:"adjacent"`
}

// Planet is one planet as seen in the empire's latest snapshot. Meter values
// reflect the last observed state, not necessarily the true current one.
type Planet struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	SystemID      int        `json:"systemId"`
	Size          PlanetSize `json:"size"`
	Type          PlanetType `json:"type"`
	Owner         int        `json:"owner"`
	Species       string     `json:"species"`
	Population    float64    `json:"population"`
	Industry      float64    `json:"industry"`
	Specials      []string   `json:"specials,omitempty"`
	Buildings     []string   `json:"buildings,omitempty"`
	Focus         Focus      `json:"focus,omitempty"`
	AvailableFoci []Focus    `json:"availableFoci,omitempty"`
}

// HasSpecial reports whether the named special is active on the planet.
func (p *Planet) HasSpecial(name string) bool {
	for _, s := range p.Specials {
		if s == name {
			return true
		}
	}
	return false
}

// HasBuilding reports whether a building of the named type is present.
func (p *Planet) HasBuilding(typeName string) bool {
	for _, b := range p.Buildings {
		if b == typeName {
			return true
		}
	}
	return false
}

// FocusAvailable reports whether the planet can be set to the given focus.
func (p *Planet) FocusAvailable(f Focus) bool {
	for _, af := range p.AvailableFoci {
		if af == f {
			return true
		}
	}
	return false
}

// Unowned reports whether no empire owns the planet.
func (p *Planet) Unowned() bool { return p.Owner == NoEmpire }

// Species describes a playable or native species.
type Species struct {
	Name            string                     `json:"name"`
	Tags            []string                   `json:"tags,omitempty"`
	Environments    map[PlanetType]Environment `json:"environments,omitempty"`
	Foci            []Focus                    `json:"foci,omitempty"`
	CanColonize     bool                       `json:"canColonize"`
	CanProduceShips bool                       `json:"canProduceShips"`
	Homeworlds      []int                      `json:"homeworlds,omitempty"`
}

// HasTag reports whether the species carries the given descriptive tag.
func (s *Species) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// LikesFocus reports whether the species can work the given focus.
func (s *Species) LikesFocus(f Focus) bool {
	for _, sf := range s.Foci {
		if sf == f {
			return true
		}
	}
	return false
}

// IsHomeworld reports whether the planet is one of the species' homeworlds.
func (s *Species) IsHomeworld(planetID int) bool {
	for _, h := range s.Homeworlds {
		if h == planetID {
			return true
		}
	}
	return false
}

// PlanetEnvironment looks up how the species rates a planet type.
// Unknown types rate as uninhabitable.
func (s *Species) PlanetEnvironment(t PlanetType) Environment {
	if s.Environments == nil {
		return EnvUninhabitable
	}
	return s.Environments[t]
}

// Ship is a single ship inside a fleet.
type Ship struct {
	ID      int      `json:"id"`
	Species string   `json:"species,omitempty"`
	Role    ShipRole `json:"role"`
}

// Fleet is a group of ships at a system, possibly already committed to a
// mission from an earlier cycle.
type Fleet struct {
	ID       int     `json:"id"`
	SystemID int     `json:"systemId"`
	Ships    []Ship  `json:"ships"`
	Mission  Mission `json:"mission,omitempty"`
	TargetID int     `json:"targetId,omitempty"`
}

// Idle reports whether the fleet has no assigned mission.
func (f *Fleet) Idle() bool { return f.Mission == MissionNone }

// HasRole reports whether any ship in the fleet carries the given role.
func (f *Fleet) HasRole(role ShipRole) bool {
	for _, s := range f.Ships {
		if s.Role == role {
			return true
		}
	}
	return false
}

// PodSpecies returns the species carried by the fleet's first colony or
// outpost pod, or "" when the fleet carries only species-less pods.
func (f *Fleet) PodSpecies() string {
	for _, s := range f.Ships {
		switch s.Role {
		case RoleColonyPod, RoleOutpostPod, RoleColonyBase, RoleOutpostBase:
			if s.Species != "" {
				return s.Species
			}
		}
	}
	return ""
}

// Lane is one obstructed starlane endpoint pair.
type Lane struct {
	A int `json:"a"`
	B int `json:"b"`
}

// QueuedShip is one ship entry on the empire's production queue.
type QueuedShip struct {
	Role       ShipRole `json:"role"`
	LocationID int      `json:"locationId"`
}

// Empire is the aggregate empire state the planner reads each turn.
type Empire struct {
	ID               int             `json:"id"`
	CapitalID        int             `json:"capitalId"`
	ProductionPoints float64         `json:"productionPoints"`
	SystemPP         map[int]float64 `json:"systemPP,omitempty"`
	CompletedTechs   map[string]bool `json:"completedTechs,omitempty"`
	ResearchQueue    []string        `json:"researchQueue,omitempty"`
	SupplySystems    []int           `json:"supplySystems,omitempty"`
	ObstructedLanes  []Lane          `json:"obstructedLanes,omitempty"`
	Production       []QueuedShip    `json:"production,omitempty"`
	Aggression       Aggression      `json:"aggression"`
}

// TechComplete reports whether the named technology has been researched.
func (e *Empire) TechComplete(name string) bool {
	return e.CompletedTechs[name]
}

// TechQueuedWithin reports whether the named technology is complete or
// appears within the first n entries of the research queue.
func (e *Empire) TechQueuedWithin(name string, n int) bool {
	if e.TechComplete(name) {
		return true
	}
	if n > len(e.ResearchQueue) {
		n = len(e.ResearchQueue)
	}
	for _, t := range e.ResearchQueue[:n] {
		if t == name {
			return true
		}
	}
	return false
}

// SystemStatus carries the military module's hostile-force estimates for a
// system, all expressed as raw fleet ratings.
type SystemStatus struct {
	FleetThreat      float64 `json:"fleetThreat"`
	MonsterThreat    float64 `json:"monsterThreat"`
	NeighborThreat   float64 `json:"neighborThreat"`
	Jump2Threat      float64 `json:"jump2Threat"`
	MyFleetRating    float64 `json:"myFleetRating"`
	MyNeighborRating float64 `json:"myNeighborRating"`
}

// Snapshot is a read-only view of the world for one turn. The planner never
// mutates it; everything derived from it is rebuilt each cycle.
type Snapshot struct {
	Turn           int                  `json:"turn"`
	Empire         *Empire              `json:"empire"`
	Systems        map[int]*System      `json:"systems"`
	Planets        map[int]*Planet      `json:"planets"`
	Fleets         map[int]*Fleet       `json:"fleets,omitempty"`
	Species        map[string]*Species  `json:"species,omitempty"`
	Status         map[int]SystemStatus `json:"status,omitempty"`
	VisibilityTurn map[int]int          `json:"visibilityTurn,omitempty"`
}

// System returns the system with the given id, or nil.
func (sn *Snapshot) System(id int) *System { return sn.Systems[id] }

// Planet returns the planet with the given id, or nil.
func (sn *Snapshot) Planet(id int) *Planet { return sn.Planets[id] }

// Fleet returns the fleet with the given id, or nil.
func (sn *Snapshot) Fleet(id int) *Fleet { return sn.Fleets[id] }

// SpeciesNamed returns the species record for a name, or nil. An empty name
// always resolves to nil.
func (sn *Snapshot) SpeciesNamed(name string) *Species {
	if name == "" {
		return nil
	}
	return sn.Species[name]
}

// Adjacent returns the neighbor system ids of a system. Absent graph data is
// treated as "no neighbors".
func (sn *Snapshot) Adjacent(systemID int) []int {
	sys := sn.Systems[systemID]
	if sys == nil {
		return nil
	}
	return sys.Adjacent
}

// PartialVisTurn returns the last turn the empire had partial visibility of
// an object, or NeverSeen.
func (sn *Snapshot) PartialVisTurn(objectID int) int {
	if t, ok := sn.VisibilityTurn[objectID]; ok {
		return t
	}
	return NeverSeen
}

// PlanetsInSystems collects the planet ids of all given systems, sorted.
func (sn *Snapshot) PlanetsInSystems(systemIDs []int) []int {
	var pids []int
	for _, sid := range systemIDs {
		if sys := sn.Systems[sid]; sys != nil {
			pids = append(pids, sys.Planets...)
		}
	}
	sort.Ints(pids)
	return pids
}

// OwnedPlanets returns the sorted ids of planets owned by the given empire.
func (sn *Snapshot) OwnedPlanets(empireID int) []int {
	var pids []int
	for id, p := range sn.Planets {
		if p.Owner == empireID {
			pids = append(pids, id)
		}
	}
	sort.Ints(pids)
	return pids
}

// laneObstructed reports whether the lane between two systems is obstructed
// for the empire, in either direction.
func (sn *Snapshot) laneObstructed(a, b int) bool {
	if sn.Empire == nil {
		return false
	}
	for _, l := range sn.Empire.ObstructedLanes {
		if (l.A == a && l.B == b) || (l.A == b && l.B == a) {
			return true
		}
	}
	return false
}

// Connected reports whether a fleet can path between two systems over
// unobstructed starlanes. BFS over the known graph; unknown systems have no
// neighbors.
func (sn *Snapshot) Connected(from, to int) bool {
	if from == to {
		return true
	}
	visited := map[int]bool{from: true}
	queue := []int{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range sn.Adjacent(cur) {
			if visited[n] || sn.laneObstructed(cur, n) {
				continue
			}
			if n == to {
				return true
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}
	return false
}

// DecodeSnapshot reads a JSON-encoded snapshot.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	var sn Snapshot
	if err := json.NewDecoder(r).Decode(&sn); err != nil {
		return nil, err
	}
	if sn.Empire == nil {
		sn.Empire = &Empire{ID: NoEmpire}
	}
	return &sn, nil
}
