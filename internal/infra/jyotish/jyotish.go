// Package jyotish implements the vedic astrology domain rules: rashi and
// nakshatra mapping, the Lahiri ayanamsa, Vimshottari dasha timelines, and
// Ashtakoota guna milan compatibility scoring.
package jyotish

import "math"

// SignNames are the twelve zodiac signs in order from 0 degrees.
var SignNames = []string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Varna is the spiritual class assigned to each rashi for varna koota.
type Varna int

const (
	VarnaShudra Varna = iota
	VarnaVaishya
	VarnaKshatriya
	VarnaBrahmin
)

// Vashya groups rashis by dominance class for vashya koota.
type Vashya int

const (
	VashyaChatushpada Vashya = iota // quadruped
	VashyaManava                    // human
	VashyaJalachara                 // water-dwelling
	VashyaVanachara                 // wild
	VashyaKeeta                     // insect
)

// Rashi is one zodiac sign with the attributes guna milan needs.
type Rashi struct {
	Index  int // 0-based from Aries.
	Name   string
	Lord   string // Ruling planet.
	Varna  Varna
	Vashya Vashya
}

var rashis = []Rashi{
	{0, "Aries", "Mars", VarnaKshatriya, VashyaChatushpada},
	{1, "Taurus", "Venus", VarnaVaishya, VashyaChatushpada},
	{2, "Gemini", "Mercury", VarnaShudra, VashyaManava},
	{3, "Cancer", "Moon", VarnaBrahmin, VashyaJalachara},
	{4, "Leo", "Sun", VarnaKshatriya, VashyaVanachara},
	{5, "Virgo", "Mercury", VarnaVaishya, VashyaManava},
	{6, "Libra", "Venus", VarnaShudra, VashyaManava},
	{7, "Scorpio", "Mars", VarnaBrahmin, VashyaKeeta},
	{8, "Sagittarius", "Jupiter", VarnaKshatriya, VashyaManava},
	{9, "Capricorn", "Saturn", VarnaVaishya, VashyaJalachara},
	{10, "Aquarius", "Saturn", VarnaShudra, VashyaManava},
	{11, "Pisces", "Jupiter", VarnaBrahmin, VashyaJalachara},
}

// RashiOf maps a sidereal longitude to its zodiac sign.
func RashiOf(siderealLon float64) Rashi {
	lon := math.Mod(siderealLon, 360)
	if lon < 0 {
		lon += 360
	}

	return rashis[int(lon/30)%12]
}

// Gana is the temperament class of a nakshatra.
type Gana int

const (
	GanaDeva Gana = iota
	GanaManushya
	GanaRakshasa
)

// Nadi is the constitutional class of a nakshatra.
type Nadi int

const (
	NadiAdi Nadi = iota
	NadiMadhya
	NadiAntya
)

// Yoni is the animal symbol of a nakshatra, used for yoni koota.
type Yoni int

const (
	YoniHorse Yoni = iota
	YoniElephant
	YoniSheep
	YoniSerpent
	YoniDog
	YoniCat
	YoniRat
	YoniCow
	YoniBuffalo
	YoniTiger
	YoniDeer
	YoniMonkey
	YoniMongoose
	YoniLion
)

// Nakshatra is one of the 27 lunar mansions, each spanning 13 deg 20 min.
type Nakshatra struct {
	Index int // 0-based from Ashwini.
	Name  string
	Lord  string // Vimshottari dasha lord.
	Gana  Gana
	Yoni  Yoni
	Nadi  Nadi
}

var nakshatras = []Nakshatra{
	{0, "Ashwini", "Ketu", GanaDeva, YoniHorse, NadiAdi},
	{1, "Bharani", "Venus", GanaManushya, YoniElephant, NadiMadhya},
	{2, "Krittika", "Sun", GanaRakshasa, YoniSheep, NadiAntya},
	{3, "Rohini", "Moon", GanaManushya, YoniSerpent, NadiAntya},
	{4, "Mrigashira", "Mars", GanaDeva, YoniSerpent, NadiMadhya},
	{5, "Ardra", "Rahu", GanaManushya, YoniDog, NadiAdi},
	{6, "Punarvasu", "Jupiter", GanaDeva, YoniCat, NadiAdi},
	{7, "Pushya", "Saturn", GanaDeva, YoniSheep, NadiMadhya},
	{8, "Ashlesha", "Mercury", GanaRakshasa, YoniCat, NadiAntya},
	{9, "Magha", "Ketu", GanaRakshasa, YoniRat, NadiAntya},
	{10, "Purva Phalguni", "Venus", GanaManushya, YoniRat, NadiMadhya},
	{11, "Uttara Phalguni", "Sun", GanaManushya, YoniCow, NadiAdi},
	{12, "Hasta", "Moon", GanaDeva, YoniBuffalo, NadiAdi},
	{13, "Chitra", "Mars", GanaRakshasa, YoniTiger, NadiMadhya},
	{14, "Swati", "Rahu", GanaDeva, YoniBuffalo, NadiAntya},
	{15, "Vishakha", "Jupiter", GanaRakshasa, YoniTiger, NadiAntya},
	{16, "Anuradha", "Saturn", GanaDeva, YoniDeer, NadiMadhya},
	{17, "Jyeshtha", "Mercury", GanaRakshasa, YoniDeer, NadiAdi},
	{18, "Mula", "Ketu", GanaRakshasa, YoniDog, NadiAdi},
	{19, "Purva Ashadha", "Venus", GanaManushya, YoniMonkey, NadiMadhya},
	{20, "Uttara Ashadha", "Sun", GanaManushya, YoniMongoose, NadiAntya},
	{21, "Shravana", "Moon", GanaDeva, YoniMonkey, NadiAntya},
	{22, "Dhanishta", "Mars", GanaRakshasa, YoniLion, NadiMadhya},
	{23, "Shatabhisha", "Rahu", GanaRakshasa, YoniHorse, NadiAdi},
	{24, "Purva Bhadrapada", "Jupiter", GanaManushya, YoniLion, NadiAdi},
	{25, "Uttara Bhadrapada", "Saturn", GanaManushya, YoniCow, NadiMadhya},
	{26, "Revati", "Mercury", GanaDeva, YoniElephant, NadiAntya},
}

const nakshatraSpan = 360.0 / 27.0

// NakshatraOf maps a sidereal longitude to its nakshatra and pada (1..4).
func NakshatraOf(siderealLon float64) (Nakshatra, int) {
	lon := math.Mod(siderealLon, 360)
	if lon < 0 {
		lon += 360
	}

	idx := int(lon / nakshatraSpan)
	within := lon - float64(idx)*nakshatraSpan
	pada := int(within/(nakshatraSpan/4)) + 1

	return nakshatras[idx%27], pada
}

// NakshatraFraction returns how far through its nakshatra a longitude lies,
// in [0, 1). The Vimshottari balance of the first mahadasha derives from it.
func NakshatraFraction(siderealLon float64) float64 {
	lon := math.Mod(siderealLon, 360)
	if lon < 0 {
		lon += 360
	}

	idx := int(lon / nakshatraSpan)

	return (lon - float64(idx)*nakshatraSpan) / nakshatraSpan
}

// LahiriAyanamsa approximates the Lahiri (Chitrapaksha) ayanamsa in degrees
// for a Julian day. Linear precession from the 1950 reference value; the
// drift against published tables stays under a few arcminutes this century.
func LahiriAyanamsa(jd float64) float64 {
	const (
		jd1950      = 2433282.5 // 1950-01-01
		base        = 23.15     // Lahiri value at 1950.0
		ratePerYear = 50.2719 / 3600.0
	)

	years := (jd - jd1950) / 365.25

	return base + years*ratePerYear
}
