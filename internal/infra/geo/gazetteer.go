// Package geo provides an embedded city gazetteer for birth place lookup.
package geo

import (
	"sort"
	"strings"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/service"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// Gazetteer implements service.LocationService over the embedded city table.
type Gazetteer struct {
	cities []entity.City
}

// NewGazetteer creates the gazetteer backed by the embedded city table.
func NewGazetteer() service.LocationService {
	return &Gazetteer{cities: cities}
}

type scoredCity struct {
	city  entity.City
	score int
}

// SearchCities matches the query against city names. Exact matches rank
// first, then prefix matches, then substring matches.
func (g *Gazetteer) SearchCities(query string, limit int) []entity.City {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	if limit <= 0 {
		limit = 10
	}

	var matched []scoredCity
	for _, c := range g.cities {
		name := strings.ToLower(c.Name)
		switch {
		case name == query:
			matched = append(matched, scoredCity{c, 0})
		case strings.HasPrefix(name, query):
			matched = append(matched, scoredCity{c, 1})
		case strings.Contains(name, query):
			matched = append(matched, scoredCity{c, 2})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].score < matched[j].score
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}

	out := make([]entity.City, len(matched))
	for i, m := range matched {
		out[i] = m.city
	}

	return out
}

// NearestCity returns the gazetteer city closest to the coordinates by
// great-circle distance.
func (g *Gazetteer) NearestCity(latitude, longitude float64) (entity.City, bool) {
	if len(g.cities) == 0 {
		return entity.City{}, false
	}

	target := orb.Point{longitude, latitude}

	best := g.cities[0]
	bestDist := orbgeo.Distance(target, orb.Point{best.Longitude, best.Latitude})
	for _, c := range g.cities[1:] {
		d := orbgeo.Distance(target, orb.Point{c.Longitude, c.Latitude})
		if d < bestDist {
			best = c
			bestDist = d
		}
	}

	return best, true
}
