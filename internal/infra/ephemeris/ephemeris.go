// Package ephemeris computes planetary positions from closed-form series.
//
// The engine uses mean orbital elements with the dominant periodic
// corrections (equation of center for the Sun and inner planets, the
// principal lunar inequalities for the Moon). Accuracy is well within a
// degree for the Sun and Moon and a few degrees for the outer planets over
// the 1900-2100 span, which is sufficient for sign, nakshatra and aspect
// work. The node (Rahu) is the mean node; Ketu is its opposite.
package ephemeris

import (
	"math"
	"time"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/service"
	"github.com/sankalpsthakur/astronova-sub007/internal/infra/jyotish"
)

const (
	// j2000 is the Julian day of the J2000.0 epoch.
	j2000 = 2451545.0
	// julianCentury is days per Julian century.
	julianCentury = 36525.0
)

// orb is the maximum deviation from exactness for each aspect kind.
var aspectOrbs = map[entity.AspectKind]float64{
	entity.Conjunction: 8,
	entity.Opposition:  8,
	entity.Trine:       6,
	entity.Square:      6,
	entity.Sextile:     4,
}

var aspectAngles = []struct {
	kind  entity.AspectKind
	angle float64
}{
	{entity.Conjunction, 0},
	{entity.Sextile, 60},
	{entity.Square, 90},
	{entity.Trine, 120},
	{entity.Opposition, 180},
}

// Engine is the closed-form ephemeris implementation of
// service.EphemerisService.
type Engine struct{}

// New returns the computational ephemeris engine.
func New() service.EphemerisService {
	return &Engine{}
}

// JulianDay converts a time to its Julian day number.
func JulianDay(t time.Time) float64 {
	u := t.UTC()
	// Unix epoch is JD 2440587.5.
	return 2440587.5 + float64(u.UnixMilli())/86_400_000.0
}

// centuries returns Julian centuries since J2000.0.
func centuries(t time.Time) float64 {
	return (JulianDay(t) - j2000) / julianCentury
}

// norm360 normalizes an angle into [0, 360).
func norm360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}

	return deg
}

func rad(deg float64) float64 { return deg * math.Pi / 180 }

// sunLongitude returns the Sun's apparent tropical longitude.
func sunLongitude(T float64) float64 {
	meanLon := 280.46646 + 36000.76983*T + 0.0003032*T*T
	meanAnom := 357.52911 + 35999.05029*T - 0.0001537*T*T
	m := rad(meanAnom)
	center := (1.914602-0.004817*T-0.000014*T*T)*math.Sin(m) +
		(0.019993-0.000101*T)*math.Sin(2*m) +
		0.000289*math.Sin(3*m)

	return norm360(meanLon + center)
}

// moonLongitude returns the Moon's tropical longitude including the major
// inequalities (evection, variation, annual equation).
func moonLongitude(T float64) float64 {
	lp := 218.3164477 + 481267.88123421*T // mean longitude
	d := 297.8501921 + 445267.1114034*T   // mean elongation
	m := 357.5291092 + 35999.0502909*T    // sun mean anomaly
	mp := 134.9633964 + 477198.8675055*T  // moon mean anomaly
	f := 93.2720950 + 483202.0175233*T    // argument of latitude

	lon := lp +
		6.288774*math.Sin(rad(mp)) +
		1.274027*math.Sin(rad(2*d-mp)) +
		0.658314*math.Sin(rad(2*d)) +
		0.213618*math.Sin(rad(2*mp)) -
		0.185116*math.Sin(rad(m)) -
		0.114332*math.Sin(rad(2*f))

	return norm360(lon)
}

// meanNode returns the Moon's mean ascending node (Rahu), which regresses
// through the zodiac in ~18.6 years.
func meanNode(T float64) float64 {
	return norm360(125.0445479 - 1934.1362891*T + 0.0020754*T*T)
}

// planetElements holds simplified mean elements for the heliocentric planets.
type planetElements struct {
	meanLon      [2]float64 // L0 + L1*T (degrees)
	perihelion   [2]float64
	eccentricity [2]float64
	semiMajor    float64 // AU
}

var heliocentric = map[entity.Planet]planetElements{
	entity.Mercury: {[2]float64{252.250906, 149474.0722491}, [2]float64{77.456119, 1.5564775}, [2]float64{0.20563175, 0.000020406}, 0.387098},
	entity.Venus:   {[2]float64{181.979801, 58519.2130302}, [2]float64{131.563707, 1.4022188}, [2]float64{0.00677188, -0.000047766}, 0.723330},
	entity.Mars:    {[2]float64{355.433275, 19141.6964746}, [2]float64{336.060234, 1.8410331}, [2]float64{0.09340062, 0.000090483}, 1.523679},
	entity.Jupiter: {[2]float64{34.351484, 3036.3027889}, [2]float64{14.331309, 1.6126668}, [2]float64{0.04849485, 0.000163244}, 5.202603},
	entity.Saturn:  {[2]float64{50.077471, 1223.5110141}, [2]float64{93.056787, 1.9637694}, [2]float64{0.05550862, -0.000346818}, 9.554909},
}

// heliocentricLongitude solves Kepler's equation for a planet's
// heliocentric position and returns its ecliptic longitude and radius.
func heliocentricLongitude(p entity.Planet, T float64) (lon, radius float64) {
	el := heliocentric[p]
	L := norm360(el.meanLon[0] + el.meanLon[1]*T)
	peri := norm360(el.perihelion[0] + el.perihelion[1]*T)
	e := el.eccentricity[0] + el.eccentricity[1]*T

	M := rad(norm360(L - peri))
	// Kepler iteration; converges in a handful of steps for planetary e.
	E := M
	for i := 0; i < 8; i++ {
		E = M + e*math.Sin(E)
	}

	v := 2 * math.Atan2(math.Sqrt(1+e)*math.Sin(E/2), math.Sqrt(1-e)*math.Cos(E/2))
	radius = el.semiMajor * (1 - e*math.Cos(E))
	lon = norm360(peri + v*180/math.Pi)

	return lon, radius
}

// geocentricLongitude converts a planet's heliocentric position to the
// longitude seen from Earth.
func geocentricLongitude(p entity.Planet, T float64) float64 {
	pl, pr := heliocentricLongitude(p, T)
	// Earth from the Sun is opposite the Sun from Earth.
	el := sunLongitude(T) // geocentric solar longitude
	er := 1.000001018 * (1 - 0.016708634*math.Cos(rad(357.52911+35999.05029*T)))

	// Rectangular ecliptic coordinates, Earth at origin.
	ex := er * math.Cos(rad(el-180))
	ey := er * math.Sin(rad(el-180))
	px := pr * math.Cos(rad(pl))
	py := pr * math.Sin(rad(pl))

	return norm360(math.Atan2(py-ey, px-ex) * 180 / math.Pi)
}

// tropicalLongitude returns the geocentric tropical longitude of any planet.
func tropicalLongitude(p entity.Planet, T float64) float64 {
	switch p {
	case entity.Sun:
		return sunLongitude(T)
	case entity.Moon:
		return moonLongitude(T)
	case entity.Rahu:
		return meanNode(T)
	case entity.Ketu:
		return norm360(meanNode(T) + 180)
	default:
		return geocentricLongitude(p, T)
	}
}

// retrograde estimates apparent retrogradation by sampling the longitude a
// day apart. Nodes regress permanently and are conventionally not flagged.
func retrograde(p entity.Planet, t time.Time) bool {
	switch p {
	case entity.Sun, entity.Moon, entity.Rahu, entity.Ketu:
		return false
	}

	now := tropicalLongitude(p, centuries(t))
	next := tropicalLongitude(p, centuries(t.Add(24*time.Hour)))
	delta := math.Mod(next-now+540, 360) - 180

	return delta < 0
}

// PositionsAt returns positions of all tracked planets at an instant.
func (e *Engine) PositionsAt(at time.Time, zodiac service.Zodiac) []entity.PlanetPosition {
	T := centuries(at)
	ayan := 0.0
	if zodiac == service.ZodiacSidereal {
		ayan = jyotish.LahiriAyanamsa(JulianDay(at))
	}

	positions := make([]entity.PlanetPosition, 0, len(entity.Planets))
	for _, p := range entity.Planets {
		lon := norm360(tropicalLongitude(p, T) - ayan)

		pos := entity.PlanetPosition{
			Planet:     p,
			Longitude:  lon,
			Sign:       signName(lon, zodiac),
			SignDegree: math.Mod(lon, 30),
			Retrograde: retrograde(p, at),
		}
		if zodiac == service.ZodiacSidereal {
			nak, pada := jyotish.NakshatraOf(lon)
			pos.Nakshatra = nak.Name
			pos.Pada = pada
		}
		positions = append(positions, pos)
	}

	return positions
}

func signName(lon float64, zodiac service.Zodiac) string {
	if zodiac == service.ZodiacSidereal {
		return jyotish.RashiOf(lon).Name
	}

	return jyotish.SignNames[int(lon/30)%12]
}

// AspectsAt returns the major aspects in effect between planet pairs,
// computed on tropical longitudes. Node pairs are skipped: Rahu-Ketu are
// in permanent opposition by construction.
func (e *Engine) AspectsAt(at time.Time) []entity.Aspect {
	T := centuries(at)
	longitudes := make(map[entity.Planet]float64, len(entity.Planets))
	for _, p := range entity.Planets {
		longitudes[p] = tropicalLongitude(p, T)
	}

	var aspects []entity.Aspect
	for i := 0; i < len(entity.Planets); i++ {
		for j := i + 1; j < len(entity.Planets); j++ {
			a, b := entity.Planets[i], entity.Planets[j]
			if (a == entity.Rahu && b == entity.Ketu) || (a == entity.Ketu && b == entity.Rahu) {
				continue
			}

			sep := math.Abs(math.Mod(longitudes[a]-longitudes[b]+540, 360) - 180)
			for _, def := range aspectAngles {
				orb := math.Abs(sep - def.angle)
				if orb <= aspectOrbs[def.kind] {
					aspects = append(aspects, entity.Aspect{
						First:  a,
						Second: b,
						Kind:   def.kind,
						Angle:  sep,
						Orb:    orb,
					})

					break
				}
			}
		}
	}

	return aspects
}

// Ascendant returns the sidereal rising sign for a moment and place.
// The ascendant is computed from local sidereal time and the obliquity of
// the ecliptic, then shifted into the sidereal frame.
func (e *Engine) Ascendant(at time.Time, latitude, longitude float64) string {
	T := centuries(at)

	// Greenwich mean sidereal time in degrees.
	gmst := norm360(280.46061837 + 360.98564736629*(JulianDay(at)-j2000) + 0.000387933*T*T)
	lst := rad(norm360(gmst + longitude))

	eps := rad(23.4392911 - 0.0130042*T)
	lat := rad(latitude)

	// Standard ascendant formula.
	asc := math.Atan2(math.Cos(lst), -(math.Sin(lst)*math.Cos(eps) + math.Tan(lat)*math.Sin(eps)))
	tropical := norm360(asc * 180 / math.Pi)

	sidereal := norm360(tropical - jyotish.LahiriAyanamsa(JulianDay(at)))

	return jyotish.RashiOf(sidereal).Name
}
