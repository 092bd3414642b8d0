package entity

import "time"

// Planet identifies one of the nine grahas tracked by the ephemeris.
type Planet string

const (
	Sun     Planet = "Sun"
	Moon    Planet = "Moon"
	Mercury Planet = "Mercury"
	Venus   Planet = "Venus"
	Mars    Planet = "Mars"
	Jupiter Planet = "Jupiter"
	Saturn  Planet = "Saturn"
	Rahu    Planet = "Rahu" // Mean ascending lunar node.
	Ketu    Planet = "Ketu" // Mean descending lunar node, always opposite Rahu.
)

// Planets lists all tracked bodies in traditional order.
var Planets = []Planet{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Rahu, Ketu}

// PlanetPosition is an ephemeris sample: where a planet stood at one instant.
type PlanetPosition struct {
	Planet     Planet  `json:"planet"`
	Longitude  float64 `json:"longitude"`  // Ecliptic longitude in [0, 360).
	Sign       string  `json:"sign"`       // Zodiac sign containing the longitude.
	SignDegree float64 `json:"degree"`     // Degree within the sign, [0, 30).
	Nakshatra  string  `json:"nakshatra,omitempty"` // Lunar mansion (sidereal positions only).
	Pada       int     `json:"pada,omitempty"`      // Quarter of the nakshatra, 1..4.
	Retrograde bool    `json:"retrograde"`
}

// AspectKind names a major (Ptolemaic) aspect between two planets.
type AspectKind string

const (
	Conjunction AspectKind = "conjunction" // 0 degrees
	Sextile     AspectKind = "sextile"     // 60 degrees
	Square      AspectKind = "square"      // 90 degrees
	Trine       AspectKind = "trine"       // 120 degrees
	Opposition  AspectKind = "opposition"  // 180 degrees
)

// Aspect records an angular relationship between two planets within orb.
type Aspect struct {
	First  Planet     `json:"first"`
	Second Planet     `json:"second"`
	Kind   AspectKind `json:"kind"`
	Angle  float64    `json:"angle"` // Exact separation in degrees.
	Orb    float64    `json:"orb"`   // Deviation from the aspect's exact angle.
}

// DashaPeriod is one span of the Vimshottari timeline ruled by a single lord.
// Mahadashas optionally carry their antardasha subdivisions.
type DashaPeriod struct {
	Lord        Planet        `json:"lord"`
	Start       time.Time     `json:"start"`
	End         time.Time     `json:"end"`
	Antardashas []DashaPeriod `json:"antardashas,omitempty"`
}

// Duration returns the length of the period.
func (d DashaPeriod) Duration() time.Duration {
	return d.End.Sub(d.Start)
}

// Active reports whether the period covers the given instant.
func (d DashaPeriod) Active(at time.Time) bool {
	return !at.Before(d.Start) && at.Before(d.End)
}
