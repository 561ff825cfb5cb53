package galaxy

// StarType classifies a system's star.
type StarType string

const (
	StarNone      StarType = "none"
	StarBlue      StarType = "blue"
	StarWhite     StarType = "white"
	StarYellow    StarType = "yellow"
	StarOrange    StarType = "orange"
	StarRed       StarType = "red"
	StarNeutron   StarType = "neutron"
	StarBlackHole StarType = "blackhole"
)

// PlanetSize doubles as the size constant used in population-capacity math.
type PlanetSize int

const (
	SizeNone      PlanetSize = 0
	SizeTiny      PlanetSize = 1
	SizeSmall     PlanetSize = 2
	SizeMedium    PlanetSize = 3
	SizeLarge     PlanetSize = 4
	SizeHuge      PlanetSize = 5
	SizeAsteroids PlanetSize = 6
	SizeGasGiant  PlanetSize = 7
)

// PlanetType is the climatic/compositional planet class a species rates
// in its environment table.
type PlanetType string

const (
	TypeSwamp     PlanetType = "swamp"
	TypeToxic     PlanetType = "toxic"
	TypeInferno   PlanetType = "inferno"
	TypeRadiated  PlanetType = "radiated"
	TypeBarren    PlanetType = "barren"
	TypeTundra    PlanetType = "tundra"
	TypeDesert    PlanetType = "desert"
	TypeTerran    PlanetType = "terran"
	TypeOcean     PlanetType = "ocean"
	TypeAsteroids PlanetType = "asteroids"
	TypeGasGiant  PlanetType = "gasgiant"
)

// Environment grades how well a species tolerates a planet type.
// The numeric order is relied upon as an index into bonus tables.
type Environment int

const (
	EnvUninhabitable Environment = 0
	EnvHostile       Environment = 1
	EnvPoor          Environment = 2
	EnvAdequate      Environment = 3
	EnvGood          Environment = 4
)

// Focus is a planet's resource specialization.
type Focus string

const (
	FocusIndustry Focus = "industry"
	FocusResearch Focus = "research"
	FocusGrowth   Focus = "growth"
	FocusMining   Focus = "mining"
)

// ShipRole tags what a ship in a fleet is for.
type ShipRole string

const (
	RoleColonyPod   ShipRole = "colony_pod"
	RoleOutpostPod  ShipRole = "outpost_pod"
	RoleColonyBase  ShipRole = "colony_base"
	RoleOutpostBase ShipRole = "outpost_base"
)

// Mission is the assignment a fleet carries toward a target planet.
type Mission string

const (
	MissionNone        Mission = ""
	MissionColonize    Mission = "colonize"
	MissionOutpost     Mission = "outpost"
	MissionOutpostBase Mission = "outpost_base"
)

// Aggression is the empire's configured assertiveness level.
type Aggression int

const (
	AggressionBeginner   Aggression = 0
	AggressionTurtle     Aggression = 1
	AggressionCautious   Aggression = 2
	AggressionTypical    Aggression = 3
	AggressionAggressive Aggression = 4
	AggressionManiacal   Aggression = 5
)

// NoEmpire is the owner value for unowned objects.
const NoEmpire = -1

// NeverSeen is the visibility turn reported for objects with no recorded
// partial-visibility history.
const NeverSeen = -9999
