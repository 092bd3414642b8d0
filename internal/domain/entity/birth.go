package entity

import "time"

// BirthDetails captures the data needed to cast a chart: the birth moment and
// the geographic location it was observed from.
type BirthDetails struct {
	Date      time.Time // Calendar date of birth (time component ignored).
	Time      *string   // Local birth time "HH:MM". Nil when the user does not know it.
	Place     string    // Human-readable place name, e.g. "Jaipur, India".
	Latitude  float64
	Longitude float64
	Timezone  string // IANA timezone of the birth place, e.g. "Asia/Kolkata".
}

// HasTime reports whether an exact birth time is known. Ascendant and dasha
// calculations require it; sun and moon signs do not.
func (b BirthDetails) HasTime() bool {
	return b.Time != nil && *b.Time != ""
}

// Moment resolves the birth instant in the birth place's timezone.
// When the birth time is unknown, local noon is assumed.
func (b BirthDetails) Moment() (time.Time, error) {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		loc = time.UTC
	}

	hour, minute := 12, 0
	if b.HasTime() {
		if parsed, perr := time.Parse("15:04", *b.Time); perr == nil {
			hour, minute = parsed.Hour(), parsed.Minute()
		}
	}

	return time.Date(b.Date.Year(), b.Date.Month(), b.Date.Day(), hour, minute, 0, 0, loc), nil
}
