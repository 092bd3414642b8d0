package jyotish

import (
	"math"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
)

// planetRelation encodes the classical friendship table between rashi lords.
type planetRelation int

const (
	relEnemy planetRelation = iota
	relNeutral
	relFriend
)

var friendships = map[string]map[string]planetRelation{
	"Sun":     {"Moon": relFriend, "Mars": relFriend, "Jupiter": relFriend, "Mercury": relNeutral, "Venus": relEnemy, "Saturn": relEnemy},
	"Moon":    {"Sun": relFriend, "Mercury": relFriend, "Mars": relNeutral, "Jupiter": relNeutral, "Venus": relNeutral, "Saturn": relNeutral},
	"Mars":    {"Sun": relFriend, "Moon": relFriend, "Jupiter": relFriend, "Venus": relNeutral, "Saturn": relNeutral, "Mercury": relEnemy},
	"Mercury": {"Sun": relFriend, "Venus": relFriend, "Mars": relNeutral, "Jupiter": relNeutral, "Saturn": relNeutral, "Moon": relEnemy},
	"Jupiter": {"Sun": relFriend, "Moon": relFriend, "Mars": relFriend, "Saturn": relNeutral, "Mercury": relEnemy, "Venus": relEnemy},
	"Venus":   {"Mercury": relFriend, "Saturn": relFriend, "Mars": relNeutral, "Jupiter": relNeutral, "Sun": relEnemy, "Moon": relEnemy},
	"Saturn":  {"Mercury": relFriend, "Venus": relFriend, "Jupiter": relNeutral, "Sun": relEnemy, "Moon": relEnemy, "Mars": relEnemy},
}

func relationOf(a, b string) planetRelation {
	if a == b {
		return relFriend
	}
	if rel, ok := friendships[a][b]; ok {
		return rel
	}

	return relNeutral
}

// yoniMatrix holds the classical 14x14 yoni compatibility scores (0..4),
// indexed by the Yoni constants. Same yoni always scores the full 4.
var yoniMatrix = [14][14]int{
	{4, 2, 2, 3, 2, 2, 2, 1, 0, 1, 3, 3, 2, 1}, // horse
	{2, 4, 3, 3, 2, 2, 2, 2, 3, 1, 2, 3, 2, 0}, // elephant
	{2, 3, 4, 2, 1, 2, 1, 3, 3, 1, 2, 0, 3, 1}, // sheep
	{3, 3, 2, 4, 2, 1, 1, 1, 1, 2, 2, 2, 0, 2}, // serpent
	{2, 2, 1, 2, 4, 2, 1, 2, 2, 1, 0, 2, 1, 1}, // dog
	{2, 2, 2, 1, 2, 4, 0, 2, 2, 1, 3, 3, 2, 1}, // cat
	{2, 2, 1, 1, 1, 0, 4, 2, 2, 2, 2, 2, 1, 2}, // rat
	{1, 2, 3, 1, 2, 2, 2, 4, 3, 0, 3, 2, 2, 1}, // cow
	{0, 3, 3, 1, 2, 2, 2, 3, 4, 1, 2, 2, 2, 1}, // buffalo
	{1, 1, 1, 2, 1, 1, 2, 0, 1, 4, 1, 1, 2, 1}, // tiger
	{3, 2, 2, 2, 0, 3, 2, 3, 2, 1, 4, 2, 2, 1}, // deer
	{3, 3, 0, 2, 2, 3, 2, 2, 2, 1, 2, 4, 3, 2}, // monkey
	{2, 2, 3, 0, 1, 2, 1, 2, 2, 2, 2, 3, 4, 2}, // mongoose
	{1, 0, 1, 2, 1, 1, 2, 1, 1, 1, 1, 2, 2, 4}, // lion
}

// vashyaMatrix scores the dominance relationship between vashya groups.
var vashyaMatrix = [5][5]int{
	{2, 1, 1, 0, 1}, // chatushpada
	{1, 2, 1, 1, 0}, // manava
	{1, 1, 2, 1, 1}, // jalachara
	{0, 1, 1, 2, 0}, // vanachara
	{1, 0, 1, 0, 2}, // keeta
}

// taraBenefic reports whether the tara counted from one nakshatra to the
// other is auspicious. Taras 3 (vipat), 5 (pratyari) and 7 (vadha) are not.
func taraBenefic(from, to int) bool {
	count := ((to-from+27)%27 + 1) % 9
	if count == 0 {
		count = 9
	}

	switch count {
	case 3, 5, 7:
		return false
	default:
		return true
	}
}

func varnaScore(a, b Rashi) int {
	// No spiritual friction when the first chart's varna is not below the second's.
	if a.Varna >= b.Varna {
		return entity.MaxVarna
	}

	return 0
}

func ganaScore(a, b Gana) int {
	switch {
	case a == b:
		return entity.MaxGana
	case (a == GanaDeva && b == GanaManushya) || (a == GanaManushya && b == GanaDeva):
		return 5
	case (a == GanaManushya && b == GanaRakshasa) || (a == GanaRakshasa && b == GanaManushya):
		return 1
	default: // deva with rakshasa
		return 0
	}
}

func maitriScore(a, b Rashi) int {
	ab := relationOf(a.Lord, b.Lord)
	ba := relationOf(b.Lord, a.Lord)

	switch {
	case ab == relFriend && ba == relFriend:
		return entity.MaxMaitri
	case (ab == relFriend && ba == relNeutral) || (ab == relNeutral && ba == relFriend):
		return 4
	case ab == relNeutral && ba == relNeutral:
		return 3
	case ab == relEnemy && ba == relEnemy:
		return 0
	default: // friend or neutral paired with enemy
		return 1
	}
}

func bhakootScore(a, b Rashi) int {
	d := ((b.Index-a.Index)%12 + 12) % 12 + 1
	switch d {
	case 2, 12, 5, 9, 6, 8:
		return 0
	default:
		return entity.MaxBhakoot
	}
}

func taraScore(a, b Nakshatra) int {
	forward := taraBenefic(a.Index, b.Index)
	backward := taraBenefic(b.Index, a.Index)

	switch {
	case forward && backward:
		return entity.MaxTara
	case forward || backward:
		return 2
	default:
		return 0
	}
}

// GunaMilan scores the Ashtakoota compatibility of two charts given the
// Moon's sidereal longitude in each. The total is bounded by 36 and every
// koota by its own maximum.
func GunaMilan(moonLonA, moonLonB float64) entity.KootaScores {
	rashiA, rashiB := RashiOf(moonLonA), RashiOf(moonLonB)
	nakA, _ := NakshatraOf(moonLonA)
	nakB, _ := NakshatraOf(moonLonB)

	scores := entity.KootaScores{
		Varna:   varnaScore(rashiA, rashiB),
		Vashya:  vashyaMatrix[rashiA.Vashya][rashiB.Vashya],
		Tara:    taraScore(nakA, nakB),
		Yoni:    yoniMatrix[nakA.Yoni][nakB.Yoni],
		Maitri:  maitriScore(rashiA, rashiB),
		Gana:    ganaScore(nakA.Gana, nakB.Gana),
		Bhakoot: bhakootScore(rashiA, rashiB),
	}

	if nakA.Nadi != nakB.Nadi {
		scores.Nadi = entity.MaxNadi
	}

	return scores
}

// SubScores derives the four displayed dimension scores from distinct koota
// groups, each scaled to a 0-10 band.
func SubScores(k entity.KootaScores) entity.SubScores {
	scale := func(value, max int) int {
		return int(math.Round(float64(value) / float64(max) * 10))
	}

	return entity.SubScores{
		Emotional: scale(k.Gana+k.Bhakoot, entity.MaxGana+entity.MaxBhakoot),
		Mental:    scale(k.Maitri+k.Varna, entity.MaxMaitri+entity.MaxVarna),
		Physical:  scale(k.Yoni+k.Vashya, entity.MaxYoni+entity.MaxVashya),
		Spiritual: scale(k.Tara+k.Nadi, entity.MaxTara+entity.MaxNadi),
	}
}

// Verdict maps a guna total to the band shown to users.
func Verdict(total int) string {
	switch {
	case total >= 33:
		return "Excellent match"
	case total >= 25:
		return "Very good match"
	case total >= 18:
		return "Acceptable match"
	default:
		return "Not recommended"
	}
}
