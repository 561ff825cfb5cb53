package colony

import (
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/fatman2021/orionai/pkg/galaxy"
)

// Census aggregates the empire's owned planets for one planning cycle.
// Every map is rebuilt from scratch by BuildCensus; nothing here survives
// into the next cycle.
type Census struct {
	SpeciesPlanets  map[string][]int // species -> populated planet ids
	SpeciesByPlanet map[int]string
	Colonizers      map[string][]int // colonizer species -> shipyard planet ids
	ShipBuilders    map[string][]int
	Shipyards       map[int]float64 // shipyard planet -> pilot rating
	DryDocks        map[int][]int   // system -> drydock planet ids
	Metabolisms     map[string]float64
	SpeciesSystems  map[int][]int // system -> populated planet ids

	GrowthSpecialsAvailable map[string][]int
	GrowthSpecialsActive    map[string][]int
	PlanetGrowthSpecials    map[int][]string

	PopCenters       map[int]bool
	Outposts         map[int]bool
	ColonizedSystems map[int][]int
	EmpireStars      map[galaxy.StarType][]int

	PilotRatings    map[int]float64
	BestPilotRating float64
	MidPilotRating  float64

	PopMap           map[int]float64
	IndustrialistPop float64
	ResearcherPop    float64

	GotRuins     bool
	GotAsteroids bool
	GotGasGiant  bool

	UnderAttack []int // systems holding colonies with positive fleet threat
	UnderThreat []int // systems holding colonies with positive neighbor threat
}

// minPilotRating is the floor reported when no ship-building species exists.
const minPilotRating = 1e-8

// BuildCensus walks the empire's owned planets and aggregates species
// rosters, shipyards, growth specials, metabolism mass, and pilot quality
// statistics. Planets newly populated since the previous cycle and still
// without a focus are ordered to the industry default through the sink.
// A planet id that no longer resolves is logged and skipped.
func BuildCensus(snap *galaxy.Snapshot, sink galaxy.OrderSink, prevPopCenters map[int]bool) *Census {
	c := &Census{
		SpeciesPlanets:          make(map[string][]int),
		SpeciesByPlanet:         make(map[int]string),
		Colonizers:              make(map[string][]int),
		ShipBuilders:            make(map[string][]int),
		Shipyards:               make(map[int]float64),
		DryDocks:                make(map[int][]int),
		Metabolisms:             make(map[string]float64),
		SpeciesSystems:          make(map[int][]int),
		GrowthSpecialsAvailable: make(map[string][]int),
		GrowthSpecialsActive:    make(map[string][]int),
		PlanetGrowthSpecials:    make(map[int][]string),
		PopCenters:              make(map[int]bool),
		Outposts:                make(map[int]bool),
		ColonizedSystems:        make(map[int][]int),
		EmpireStars:             make(map[galaxy.StarType][]int),
		PilotRatings:            make(map[int]float64),
		PopMap:                  make(map[int]float64),
		BestPilotRating:         minPilotRating,
		MidPilotRating:          minPilotRating,
	}

	empire := snap.Empire
	owned := snap.OwnedPlanets(empire.ID)

	for _, pid := range owned {
		planet := snap.Planet(pid)
		if planet == nil {
			log.Warn().Int("planetId", pid).Msg("Owned planet no longer resolves; skipping")
			continue
		}
		c.ColonizedSystems[planet.SystemID] = append(c.ColonizedSystems[planet.SystemID], pid)
		if planet.HasSpecial("ANCIENT_RUINS_SPECIAL") {
			c.GotRuins = true
		}
		switch planet.Size {
		case galaxy.SizeAsteroids:
			c.GotAsteroids = true
		case galaxy.SizeGasGiant:
			c.GotGasGiant = true
		}
		c.PopMap[pid] = planet.Population
		switch planet.Focus {
		case galaxy.FocusIndustry:
			c.IndustrialistPop += planet.Population
		case galaxy.FocusResearch:
			c.ResearcherPop += planet.Population
		}
		if planet.Population > 0 {
			c.PopCenters[pid] = true
			c.SpeciesByPlanet[pid] = planet.Species
			c.SpeciesPlanets[planet.Species] = append(c.SpeciesPlanets[planet.Species], pid)
			if !prevPopCenters[pid] && planet.Focus == "" && planet.FocusAvailable(galaxy.FocusIndustry) {
				sink.SetFocus(pid, galaxy.FocusIndustry)
				log.Info().Int("planetId", pid).Str("planet", planet.Name).
					Msg("Setting default focus on newly acquired colony")
			}
		} else {
			c.Outposts[pid] = true
		}
	}

	for sysID := range c.ColonizedSystems {
		sys := snap.System(sysID)
		if sys != nil {
			c.EmpireStars[sys.Star] = append(c.EmpireStars[sys.Star], sysID)
		}
		st := snap.Status[sysID]
		if st.FleetThreat > 0 {
			c.UnderAttack = append(c.UnderAttack, sysID)
		}
		if st.NeighborThreat > 0 {
			c.UnderThreat = append(c.UnderThreat, sysID)
		}
	}
	for star := range c.EmpireStars {
		sort.Ints(c.EmpireStars[star])
	}
	sort.Ints(c.UnderAttack)
	sort.Ints(c.UnderThreat)

	// Exobots are available as colonizers once the tech lands, colony or no.
	if empire.TechComplete(exobotTech) {
		c.Colonizers[exobotSpecies] = []int{}
	}

	specNames := make([]string, 0, len(c.SpeciesPlanets))
	for name := range c.SpeciesPlanets {
		specNames = append(specNames, name)
	}
	sort.Strings(specNames)

	for _, specName := range specNames {
		spec := snap.SpeciesNamed(specName)
		if spec == nil {
			log.Warn().Str("species", specName).Msg("No species record for populated planet")
			continue
		}
		pilotVal := 0.0
		if spec.CanProduceShips {
			pilotVal = ratePilotingTags(spec.Tags)
			if specName == aciremaSpecies {
				pilotVal++
			}
		}
		var metabolisms []string
		for _, tag := range metabolismTags {
			if spec.HasTag(tag) {
				metabolisms = append(metabolisms, tag)
			}
		}
		var shipyards []int
		for _, pid := range c.SpeciesPlanets[specName] {
			planet := snap.Planet(pid)
			if planet == nil {
				continue
			}
			for _, metab := range metabolisms {
				c.Metabolisms[metab] += float64(planet.Size)
			}
			for _, special := range planet.Specials {
				if _, ok := metabolismBoosts[special]; !ok {
					continue
				}
				c.PlanetGrowthSpecials[pid] = append(c.PlanetGrowthSpecials[pid], special)
				c.GrowthSpecialsAvailable[special] = append(c.GrowthSpecialsAvailable[special], pid)
				if planet.Focus == galaxy.FocusGrowth {
					c.GrowthSpecialsActive[special] = append(c.GrowthSpecialsActive[special], pid)
				}
			}
			if spec.CanProduceShips {
				c.PilotRatings[pid] = pilotVal
				if planet.HasBuilding(shipyardBuilding) {
					shipyards = append(shipyards, pid)
				}
			}
			if planet.HasBuilding(drydockBuilding) {
				c.DryDocks[planet.SystemID] = append(c.DryDocks[planet.SystemID], pid)
			}
			c.SpeciesSystems[planet.SystemID] = append(c.SpeciesSystems[planet.SystemID], pid)
		}
		if spec.CanProduceShips {
			c.ShipBuilders[specName] = shipyards
			for _, yard := range shipyards {
				c.Shipyards[yard] = pilotVal
			}
			if spec.CanColonize {
				c.Colonizers[specName] = shipyards
			}
		}
	}

	if len(c.PilotRatings) > 0 {
		ratings := make([]float64, 0, len(c.PilotRatings))
		for _, r := range c.PilotRatings {
			ratings = append(ratings, r)
		}
		sort.Sort(sort.Reverse(sort.Float64Slice(ratings)))
		c.BestPilotRating = ratings[0]
		if len(ratings) == 1 {
			c.MidPilotRating = ratings[0]
		} else {
			c.MidPilotRating = ratings[1+len(ratings)/5]
		}
	}

	return c
}

// ColonizerNames returns the colonizer species names in stable order.
func (c *Census) ColonizerNames() []string {
	names := make([]string, 0, len(c.Colonizers))
	for name := range c.Colonizers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
