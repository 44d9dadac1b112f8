package domain

type Element string

const (
	ElementFire  Element = "fire"
	ElementWater Element = "water"
	ElementAir   Element = "air"
	ElementEarth Element = "earth"
)

// Elements lists the four elements in display order.
var Elements = []Element{ElementFire, ElementWater, ElementAir, ElementEarth}

type AlignmentQuality string

const (
	QualityPerfect  AlignmentQuality = "perfect"
	QualityStrong   AlignmentQuality = "strong"
	QualityModerate AlignmentQuality = "moderate"
	QualityWeak     AlignmentQuality = "weak"
	QualityOpposing AlignmentQuality = "opposing"
)

type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

type PlanetID string

const (
	PlanetSun     PlanetID = "sun"
	PlanetMoon    PlanetID = "moon"
	PlanetMars    PlanetID = "mars"
	PlanetMercury PlanetID = "mercury"
	PlanetJupiter PlanetID = "jupiter"
	PlanetVenus   PlanetID = "venus"
	PlanetSaturn  PlanetID = "saturn"
)

// LocationSource records how a UserLocation was obtained.
type LocationSource string

const (
	SourceGeo      LocationSource = "geo"
	SourceManual   LocationSource = "manual"
	SourceFallback LocationSource = "fallback"
)
