package galaxy

// OrderSink receives the discrete commands the planner issues toward the
// game engine. Calls are fire-and-forget; the engine applies them at end of
// turn and any rejection surfaces in the next snapshot.
type OrderSink interface {
	// SetFocus changes a planet's active focus.
	SetFocus(planetID int, focus Focus)
	// EnqueueShip queues production of a ship with the given role at a
	// planet's shipyard.
	EnqueueShip(role ShipRole, locationID int)
	// AssignMission commits a fleet to a mission with a target planet.
	AssignMission(fleetID int, mission Mission, targetPlanetID int)
}

// FocusOrder records one SetFocus call.
type FocusOrder struct {
	PlanetID int
	Focus    Focus
}

// BuildOrder records one EnqueueShip call.
type BuildOrder struct {
	Role       ShipRole
	LocationID int
}

// MissionOrder records one AssignMission call.
type MissionOrder struct {
	FleetID  int
	Mission  Mission
	TargetID int
}

// OrderLog is an OrderSink that records every order in issue order. Used by
// the CLI harness and tests; a game-engine binding replaces it in play.
type OrderLog struct {
	Focus    []FocusOrder
	Builds   []BuildOrder
	Missions []MissionOrder
}

func (l *OrderLog) SetFocus(planetID int, focus Focus) {
	l.Focus = append(l.Focus, FocusOrder{PlanetID: planetID, Focus: focus})
}

func (l *OrderLog) EnqueueShip(role ShipRole, locationID int) {
	l.Builds = append(l.Builds, BuildOrder{Role: role, LocationID: locationID})
}

func (l *OrderLog) AssignMission(fleetID int, mission Mission, targetPlanetID int) {
	l.Missions = append(l.Missions, MissionOrder{FleetID: fleetID, Mission: mission, TargetID: targetPlanetID})
}
