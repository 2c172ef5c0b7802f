package services

import (
	"context"

	"github.com/abrezinsky/reviewwheel/internal/models"
)

// RouletteServicer defines the interface for wheel session operations
type RouletteServicer interface {
	Restore(ctx context.Context) models.Snapshot
	Spin(ctx context.Context) (models.Snapshot, bool)
	Review(ctx context.Context) (models.Snapshot, bool)
	Reset(ctx context.Context) models.Snapshot
	Snapshot() models.Snapshot
	Prizes() []models.Prize
	Chances() []models.PrizeChance
	ReviewURL() string
	ReviewQRImage(size int) ([]byte, error)
	SetBroadcaster(b Broadcaster)
	SetNavigator(n Navigator)
	Close()
}

// Compile-time check that the implementation satisfies the interface
var _ RouletteServicer = (*RouletteService)(nil)
