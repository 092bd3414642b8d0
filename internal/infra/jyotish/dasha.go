package jyotish

import (
	"time"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
)

// vimshottariYear is the dasha year length in days.
const vimshottariYear = 365.25

// vimshottariLords is the fixed lord sequence; the years sum to the
// 120-year cycle. The sequence starts from Ketu because Ashwini, the first
// nakshatra, is ruled by Ketu.
var vimshottariLords = []struct {
	lord  entity.Planet
	years float64
}{
	{entity.Ketu, 7},
	{entity.Venus, 20},
	{entity.Sun, 6},
	{entity.Moon, 10},
	{entity.Mars, 7},
	{entity.Rahu, 18},
	{entity.Jupiter, 16},
	{entity.Saturn, 19},
	{entity.Mercury, 17},
}

// VimshottariCycleYears is the full dasha cycle length.
const VimshottariCycleYears = 120.0

func dashaDuration(years float64) time.Duration {
	return time.Duration(years * vimshottariYear * 24 * float64(time.Hour))
}

// VimshottariTimeline assembles the mahadasha sequence covering a full
// 120-year cycle from birth, given the Moon's sidereal longitude at birth.
//
// The first mahadasha is ruled by the birth nakshatra's lord and is shortened
// by the fraction of the nakshatra the Moon has already traversed; the
// remaining eight lords follow in fixed order with their full spans, and the
// cycle wraps so the periods tile exactly 120 years.
func VimshottariTimeline(birth time.Time, moonSiderealLon float64) []entity.DashaPeriod {
	nak, _ := NakshatraOf(moonSiderealLon)
	elapsed := NakshatraFraction(moonSiderealLon)

	startIdx := 0
	for i, l := range vimshottariLords {
		if string(l.lord) == nak.Lord {
			startIdx = i

			break
		}
	}

	periods := make([]entity.DashaPeriod, 0, len(vimshottariLords))
	cursor := birth

	for i := 0; i < len(vimshottariLords); i++ {
		l := vimshottariLords[(startIdx+i)%len(vimshottariLords)]

		years := l.years
		if i == 0 {
			// Balance of the first mahadasha: the part of the lord's span
			// not yet consumed at birth.
			years = l.years * (1 - elapsed)
		}

		end := cursor.Add(dashaDuration(years))
		periods = append(periods, entity.DashaPeriod{
			Lord:        l.lord,
			Start:       cursor,
			End:         end,
			Antardashas: antardashas(l.lord, cursor, end),
		})
		cursor = end
	}

	return periods
}

// antardashas subdivides a mahadasha into nine sub-periods. Each antardasha
// lasts maha * sub / 120 of the cycle and the sequence starts from the
// mahadasha's own lord. For a truncated first mahadasha the subdivisions
// scale with the truncated span, keeping the tiling exact.
func antardashas(mahaLord entity.Planet, start, end time.Time) []entity.DashaPeriod {
	total := end.Sub(start)

	startIdx := 0
	for i, l := range vimshottariLords {
		if l.lord == mahaLord {
			startIdx = i

			break
		}
	}

	subs := make([]entity.DashaPeriod, 0, len(vimshottariLords))
	cursor := start
	for i := 0; i < len(vimshottariLords); i++ {
		l := vimshottariLords[(startIdx+i)%len(vimshottariLords)]

		span := time.Duration(float64(total) * l.years / VimshottariCycleYears)
		subEnd := cursor.Add(span)
		if i == len(vimshottariLords)-1 {
			// Absorb rounding drift so antardashas tile the mahadasha.
			subEnd = end
		}

		subs = append(subs, entity.DashaPeriod{
			Lord:  l.lord,
			Start: cursor,
			End:   subEnd,
		})
		cursor = subEnd
	}

	return subs
}

// CurrentDasha returns the mahadasha and antardasha active at the given
// time, or nil when the time falls outside the timeline.
func CurrentDasha(timeline []entity.DashaPeriod, at time.Time) (maha, antar *entity.DashaPeriod) {
	for i := range timeline {
		if !timeline[i].Active(at) {
			continue
		}
		maha = &timeline[i]
		for j := range timeline[i].Antardashas {
			if timeline[i].Antardashas[j].Active(at) {
				antar = &timeline[i].Antardashas[j]

				break
			}
		}

		break
	}

	return maha, antar
}
