package mock

import (
	"context"
	"sync"

	"github.com/abrezinsky/reviewwheel/internal/models"
	"github.com/abrezinsky/reviewwheel/internal/repository"
)

// Repository wraps a real repository and allows injecting errors for testing.
//
// Usage:
//
//	realRepo := testutil.NewTestRepository(t)
//	mockRepo := mock.NewRepository(realRepo)
//	mockRepo.SaveSessionError = errors.New("disk full")
//	svc := services.NewRouletteService(log, mockRepo, opts)
type Repository struct {
	repository.FullRepository

	mu    sync.Mutex
	calls map[string]int

	LoadSessionError  error
	SaveSessionError  error
	ClearSessionError error
	GetValueError     error
	SetValueError     error
	DeleteValueError  error
}

// NewRepository creates a mock repository wrapping a real one
func NewRepository(real repository.FullRepository) *Repository {
	return &Repository{
		FullRepository: real,
		calls:          make(map[string]int),
	}
}

// Calls returns how many times the named method was invoked
func (m *Repository) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

func (m *Repository) record(method string) {
	m.mu.Lock()
	m.calls[method]++
	m.mu.Unlock()
}

func (m *Repository) LoadSession(ctx context.Context) (*models.SessionRecord, error) {
	m.record("LoadSession")
	if m.LoadSessionError != nil {
		return nil, m.LoadSessionError
	}
	return m.FullRepository.LoadSession(ctx)
}

func (m *Repository) SaveSession(ctx context.Context, rec models.SessionRecord) error {
	m.record("SaveSession")
	if m.SaveSessionError != nil {
		return m.SaveSessionError
	}
	return m.FullRepository.SaveSession(ctx, rec)
}

func (m *Repository) ClearSession(ctx context.Context) error {
	m.record("ClearSession")
	if m.ClearSessionError != nil {
		return m.ClearSessionError
	}
	return m.FullRepository.ClearSession(ctx)
}

func (m *Repository) GetValue(ctx context.Context, key string) (string, error) {
	m.record("GetValue")
	if m.GetValueError != nil {
		return "", m.GetValueError
	}
	return m.FullRepository.GetValue(ctx, key)
}

func (m *Repository) SetValue(ctx context.Context, key, value string) error {
	m.record("SetValue")
	if m.SetValueError != nil {
		return m.SetValueError
	}
	return m.FullRepository.SetValue(ctx, key, value)
}

func (m *Repository) DeleteValue(ctx context.Context, key string) error {
	m.record("DeleteValue")
	if m.DeleteValueError != nil {
		return m.DeleteValueError
	}
	return m.FullRepository.DeleteValue(ctx, key)
}
