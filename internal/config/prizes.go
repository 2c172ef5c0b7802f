package config

import (
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abrezinsky/reviewwheel/internal/errors"
	"github.com/abrezinsky/reviewwheel/internal/models"
	"github.com/abrezinsky/reviewwheel/internal/roulette"
)

// prizeEntry is one prize in the prize table file
type prizeEntry struct {
	ID          int     `yaml:"id"`
	Name        string  `yaml:"name"`
	DisplayName string  `yaml:"display_name"`
	Color       string  `yaml:"color"`
	Weight      float64 `yaml:"weight"`
}

type prizeTable struct {
	Prizes []prizeEntry `yaml:"prizes"`
}

// DefaultPrizes returns the built-in prize table
func DefaultPrizes() []models.Prize {
	return []models.Prize{
		{ID: 1, Name: "Canned Soda", DisplayName: "캔 음료(or 1,000원 할인)", Color: "#FF6B6B", Weight: 80},
		{ID: 2, Name: "2,000 KRW Discount", DisplayName: "2,000원 할인", Color: "#4ECDC4", Weight: 15},
		{ID: 3, Name: "3000 KRW Discount", DisplayName: "3,000원 할인", Color: "#FFD93D", Weight: 5},
	}
}

// LoadPrizes reads a prize table YAML file. An empty path yields the built-in table.
func LoadPrizes(path string) ([]models.Prize, error) {
	if path == "" {
		return DefaultPrizes(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading prize table %s: %w", path, err)
	}
	return ParsePrizes(data)
}

// ParsePrizes decodes and validates a prize table document
func ParsePrizes(data []byte) ([]models.Prize, error) {
	var table prizeTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, errors.Wrap(err, errors.ErrValidation, "parsing prize table")
	}

	prizes := make([]models.Prize, len(table.Prizes))
	for i, e := range table.Prizes {
		display := e.DisplayName
		if display == "" {
			display = e.Name
		}
		prizes[i] = models.Prize{
			ID:          e.ID,
			Name:        e.Name,
			DisplayName: display,
			Color:       e.Color,
			Weight:      e.Weight,
		}
	}

	if err := ValidatePrizes(prizes); err != nil {
		return nil, err
	}
	return prizes, nil
}

// ValidatePrizes checks that the table is non-empty, ids are unique,
// every weight is strictly positive and finite, the total is finite and
// every prize has a label.
func ValidatePrizes(prizes []models.Prize) error {
	if len(prizes) == 0 {
		return errors.Validation("prize table has no prizes defined")
	}

	seen := make(map[int]bool, len(prizes))
	for i, p := range prizes {
		if seen[p.ID] {
			return errors.Validationf("prize %d: duplicate id", p.ID)
		}
		seen[p.ID] = true

		if !roulette.ValidWeight(p.Weight) {
			return errors.Validationf("prize %d: weight must be positive and finite, got %v", p.ID, p.Weight)
		}
		if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.DisplayName) == "" {
			return errors.Validationf("prize at position %d: name is required", i+1)
		}
	}

	if total := roulette.TotalWeight(prizes); math.IsInf(total, 0) {
		return errors.Validation("prize weights are too large: total is not finite")
	}
	return nil
}
