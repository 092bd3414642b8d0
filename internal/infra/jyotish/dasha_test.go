package jyotish

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
)

var testBirth = time.Date(1990, 6, 15, 8, 30, 0, 0, time.UTC)

func TestVimshottariTimeline_NineMahadashas(t *testing.T) {
	timeline := VimshottariTimeline(testBirth, 100.0)

	require.Len(t, timeline, 9)
	assert.Equal(t, testBirth, timeline[0].Start)

	seen := map[entity.Planet]bool{}
	for _, p := range timeline {
		assert.False(t, seen[p.Lord], "each lord rules exactly once")
		seen[p.Lord] = true
	}
}

func TestVimshottariTimeline_PeriodsTile(t *testing.T) {
	timeline := VimshottariTimeline(testBirth, 217.3)

	for i := 1; i < len(timeline); i++ {
		assert.Equal(t, timeline[i-1].End, timeline[i].Start,
			"mahadasha %d must start where %d ends", i, i-1)
	}
}

func TestVimshottariTimeline_FirstDashaBalance(t *testing.T) {
	// Moon at 0 degrees: start of Ashwini, so the full Ketu mahadasha of
	// 7 years remains.
	timeline := VimshottariTimeline(testBirth, 0.0)

	require.Equal(t, entity.Ketu, timeline[0].Lord)
	assert.InDelta(t, 7*vimshottariYear*24, timeline[0].Duration().Hours(), 1.0)

	// Moon halfway through Ashwini: half the Ketu span remains.
	halfway := VimshottariTimeline(testBirth, nakshatraSpan/2)
	require.Equal(t, entity.Ketu, halfway[0].Lord)
	assert.InDelta(t, 3.5*vimshottariYear*24, halfway[0].Duration().Hours(), 1.0)
}

func TestVimshottariTimeline_TotalNearCycle(t *testing.T) {
	// With the first mahadasha truncated, the timeline covers 120 years
	// minus the consumed balance.
	lon := nakshatraSpan * 0.25 // Quarter into Ashwini.
	timeline := VimshottariTimeline(testBirth, lon)

	total := timeline[len(timeline)-1].End.Sub(timeline[0].Start)
	consumed := 7.0 * 0.25
	wantYears := VimshottariCycleYears - consumed
	assert.InDelta(t, wantYears*vimshottariYear*24, total.Hours(), 24.0)
}

func TestAntardashas_TileExactly(t *testing.T) {
	timeline := VimshottariTimeline(testBirth, 42.0)

	for _, maha := range timeline {
		subs := maha.Antardashas
		require.Len(t, subs, 9)

		assert.Equal(t, maha.Start, subs[0].Start)
		assert.Equal(t, maha.End, subs[len(subs)-1].End)
		for i := 1; i < len(subs); i++ {
			assert.Equal(t, subs[i-1].End, subs[i].Start)
		}

		// The first antardasha belongs to the mahadasha lord itself.
		assert.Equal(t, maha.Lord, subs[0].Lord)
	}
}

func TestCurrentDasha(t *testing.T) {
	timeline := VimshottariTimeline(testBirth, 100.0)

	at := testBirth.AddDate(12, 0, 0)
	maha, antar := CurrentDasha(timeline, at)
	require.NotNil(t, maha)
	require.NotNil(t, antar)
	assert.True(t, maha.Active(at))
	assert.True(t, antar.Active(at))

	before := testBirth.Add(-time.Hour)
	maha, antar = CurrentDasha(timeline, before)
	assert.Nil(t, maha)
	assert.Nil(t, antar)
}

func TestVimshottariLords_SumTo120(t *testing.T) {
	var sum float64
	for _, l := range vimshottariLords {
		sum += l.years
	}
	assert.Equal(t, VimshottariCycleYears, sum)
}
