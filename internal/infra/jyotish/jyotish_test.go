package jyotish

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRashiOf(t *testing.T) {
	tests := []struct {
		lon  float64
		want string
	}{
		{0, "Aries"},
		{29.99, "Aries"},
		{30, "Taurus"},
		{123.4, "Leo"},
		{359.9, "Pisces"},
		{370, "Aries"},    // Wraps past 360.
		{-10, "Pisces"},   // Negative longitudes normalize.
		{-40, "Aquarius"}, // A full sign below zero.
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RashiOf(tt.lon).Name, "longitude %f", tt.lon)
	}
}

func TestNakshatraOf(t *testing.T) {
	first, pada := NakshatraOf(0)
	assert.Equal(t, "Ashwini", first.Name)
	assert.Equal(t, "Ketu", first.Lord)
	assert.Equal(t, 1, pada)

	_, pada = NakshatraOf(nakshatraSpan - 0.01)
	assert.Equal(t, 4, pada)

	last, _ := NakshatraOf(359.9)
	assert.Equal(t, "Revati", last.Name)
	assert.Equal(t, "Mercury", last.Lord)
}

func TestNakshatraFraction(t *testing.T) {
	assert.InDelta(t, 0.0, NakshatraFraction(0), 1e-9)
	assert.InDelta(t, 0.5, NakshatraFraction(nakshatraSpan/2), 1e-9)
	assert.InDelta(t, 0.25, NakshatraFraction(nakshatraSpan*1.25), 1e-9)
}

func TestTables_Complete(t *testing.T) {
	require.Len(t, rashis, 12)
	require.Len(t, nakshatras, 27)
	require.Len(t, SignNames, 12)

	for i, r := range rashis {
		assert.Equal(t, SignNames[i], r.Name)
		assert.NotEmpty(t, r.Lord)
	}

	for _, n := range nakshatras {
		assert.NotEmpty(t, n.Name)
		assert.NotEmpty(t, n.Lord)
	}
}

func TestLahiriAyanamsa(t *testing.T) {
	// Published Lahiri values: roughly 23.15 at 1950 and a little over 24
	// degrees in the 2020s.
	const jd1950 = 2433282.5
	assert.InDelta(t, 23.15, LahiriAyanamsa(jd1950), 0.01)

	jd2024 := jd1950 + 74*365.25
	a := LahiriAyanamsa(jd2024)
	assert.Greater(t, a, 24.0)
	assert.Less(t, a, 24.4)
}
