package testutil

import (
	"testing"

	"github.com/abrezinsky/reviewwheel/internal/config"
	"github.com/abrezinsky/reviewwheel/internal/models"
	"github.com/abrezinsky/reviewwheel/internal/repository"
)

// NewTestRepository creates a fresh in-memory repository with migrations applied
func NewTestRepository(t *testing.T) *repository.Repository {
	t.Helper()

	repo, err := repository.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	return repo
}

// DefaultPrizes returns the built-in 80/15/5 prize table
func DefaultPrizes() []models.Prize {
	return config.DefaultPrizes()
}
