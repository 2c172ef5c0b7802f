// Package roulette holds the pure parts of the prize wheel: the weighted draw,
// the wheel geometry and the encoding of the persisted session record.
package roulette

import (
	"math"

	"github.com/abrezinsky/reviewwheel/internal/models"
)

// RandSource yields uniform samples in [0, 1). *math/rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// ValidWeight reports whether w is a usable prize weight: positive and finite
func ValidWeight(w float64) bool {
	return w > 0 && !math.IsInf(w, 0)
}

// TotalWeight sums the weights of all prizes
func TotalWeight(prizes []models.Prize) float64 {
	var total float64
	for _, p := range prizes {
		total += p.Weight
	}
	return total
}

// SelectPrize draws one prize with probability weight/total using a single sample.
// The first prize whose running sum reaches the sample wins; if rounding leaves
// no winner the last prize is returned, so the draw never fails for a non-empty
// list with positive weights.
func SelectPrize(prizes []models.Prize, rng RandSource) models.Prize {
	r := rng.Float64() * TotalWeight(prizes)

	var cumulative float64
	for _, p := range prizes {
		cumulative += p.Weight
		if cumulative >= r {
			return p
		}
	}

	return prizes[len(prizes)-1]
}

// IndexOf returns the position of the prize with the given id, or -1
func IndexOf(prizes []models.Prize, id int) int {
	for i, p := range prizes {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Chances reports every prize with its percentage of the total weight,
// rounded to two decimals.
func Chances(prizes []models.Prize) []models.PrizeChance {
	total := TotalWeight(prizes)
	result := make([]models.PrizeChance, len(prizes))
	for i, p := range prizes {
		chance := 0.0
		if total > 0 {
			chance = roundTo(p.Weight/total*100, 2)
		}
		result[i] = models.PrizeChance{Prize: p, Chance: chance}
	}
	return result
}

func roundTo(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}
