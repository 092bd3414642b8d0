package entity

import (
	"time"

	"github.com/google/uuid"
)

// Guna milan koota maxima. The eight kootas sum to the traditional 36 points.
const (
	MaxVarna   = 1
	MaxVashya  = 2
	MaxTara    = 3
	MaxYoni    = 4
	MaxMaitri  = 5
	MaxGana    = 6
	MaxBhakoot = 7
	MaxNadi    = 8
	MaxGuna    = 36
)

// KootaScores breaks a compatibility total down into the eight Ashtakoota
// categories. Each score is bounded by its koota's maximum.
type KootaScores struct {
	Varna   int `json:"varna"`   // Spiritual compatibility, max 1.
	Vashya  int `json:"vashya"`  // Mutual attraction, max 2.
	Tara    int `json:"tara"`    // Birth-star destiny, max 3.
	Yoni    int `json:"yoni"`    // Physical compatibility, max 4.
	Maitri  int `json:"maitri"`  // Friendship of rashi lords, max 5.
	Gana    int `json:"gana"`    // Temperament, max 6.
	Bhakoot int `json:"bhakoot"` // Emotional bond of moon signs, max 7.
	Nadi    int `json:"nadi"`    // Health and progeny, max 8.
}

// Total sums the eight kootas into the classical 36-point score.
func (k KootaScores) Total() int {
	return k.Varna + k.Vashya + k.Tara + k.Yoni + k.Maitri + k.Gana + k.Bhakoot + k.Nadi
}

// SubScores are the four dimension scores shown on the match screen, each on
// a 0-10 scale. They are derived from distinct koota groups rather than all
// from the total.
type SubScores struct {
	Emotional int `json:"emotional"` // gana + bhakoot, scaled to 10.
	Mental    int `json:"mental"`    // maitri + varna, scaled to 10.
	Physical  int `json:"physical"`  // yoni + vashya, scaled to 10.
	Spiritual int `json:"spiritual"` // tara + nadi, scaled to 10.
}

// KundaliMatch is a stored compatibility check between the requesting user's
// chart and a partner's birth data.
type KundaliMatch struct {
	ID          uuid.UUID    `json:"id"`
	UserID      uuid.UUID    `json:"user_id"`
	PartnerName string       `json:"partner_name"`
	Partner     BirthDetails `json:"partner"`
	Total       int          `json:"total"` // Guna total in [0, 36].
	Kootas      KootaScores  `json:"kootas"`
	Scores      SubScores    `json:"scores"`
	Verdict     string       `json:"verdict"` // Human-readable summary band.
	CreatedAt   time.Time    `json:"created_at"`
}
