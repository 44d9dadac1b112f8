package domain

// Planet is one of the seven classical rulers. Records are static and
// never mutated after package init.
type Planet struct {
	ID                   PlanetID
	Name                 string
	LocalizedName        string
	Element              Element
	LocalizedElementName string
}

var planets = map[PlanetID]Planet{
	PlanetSun:     newPlanet(PlanetSun, "Sun", "الشمس", ElementFire),
	PlanetMoon:    newPlanet(PlanetMoon, "Moon", "القمر", ElementWater),
	PlanetMars:    newPlanet(PlanetMars, "Mars", "المريخ", ElementFire),
	PlanetMercury: newPlanet(PlanetMercury, "Mercury", "عطارد", ElementAir),
	PlanetJupiter: newPlanet(PlanetJupiter, "Jupiter", "المشتري", ElementAir),
	PlanetVenus:   newPlanet(PlanetVenus, "Venus", "الزهرة", ElementEarth),
	PlanetSaturn:  newPlanet(PlanetSaturn, "Saturn", "زحل", ElementEarth),
}

func newPlanet(id PlanetID, name, localized string, e Element) Planet {
	return Planet{
		ID:                   id,
		Name:                 name,
		LocalizedName:        localized,
		Element:              e,
		LocalizedElementName: e.LocalizedName(),
	}
}

// PlanetByID returns the static planet record for id.
func PlanetByID(id PlanetID) (Planet, bool) {
	p, ok := planets[id]
	return p, ok
}

// MustPlanet is PlanetByID for identifiers known at compile time.
func MustPlanet(id PlanetID) Planet {
	p, ok := planets[id]
	if !ok {
		panic("unknown planet: " + string(id))
	}
	return p
}
