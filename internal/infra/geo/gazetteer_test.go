package geo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGazetteer_SearchCities(t *testing.T) {
	g := NewGazetteer()

	t.Run("exact match ranks first", func(t *testing.T) {
		results := g.SearchCities("Delhi", 10)
		require.NotEmpty(t, results)
		assert.Equal(t, "Delhi", results[0].Name)
	})

	t.Run("prefix match", func(t *testing.T) {
		results := g.SearchCities("mum", 5)
		require.NotEmpty(t, results)
		assert.Equal(t, "Mumbai", results[0].Name)
	})

	t.Run("case insensitive", func(t *testing.T) {
		results := g.SearchCities("BENGALURU", 5)
		require.Len(t, results, 1)
		assert.Equal(t, "Asia/Kolkata", results[0].Timezone)
	})

	t.Run("limit respected", func(t *testing.T) {
		results := g.SearchCities("a", 3)
		assert.LessOrEqual(t, len(results), 3)
	})

	t.Run("empty query", func(t *testing.T) {
		assert.Empty(t, g.SearchCities("   ", 5))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, g.SearchCities("atlantis", 5))
	})
}

func TestGazetteer_NearestCity(t *testing.T) {
	g := NewGazetteer()

	city, ok := g.NearestCity(19.0, 72.9)
	require.True(t, ok)
	assert.Equal(t, "Mumbai", city.Name)

	city, ok = g.NearestCity(51.5, -0.1)
	require.True(t, ok)
	assert.Equal(t, "London", city.Name)
}

func TestGazetteer_TimezonesLoadable(t *testing.T) {
	for _, c := range cities {
		_, err := time.LoadLocation(c.Timezone)
		assert.NoError(t, err, "timezone %s for %s", c.Timezone, c.Name)
	}
}
