package mocks

import (
	"context"

	"github.com/cinebox/cinema-box-office/internal/domain"
)

type MockCinemaRepo struct {
	domain.CinemaRepository
	LoadFunc func(ctx context.Context) (*domain.Snapshot, error)
	SaveFunc func(ctx context.Context, snap *domain.Snapshot) error
}

func (m *MockCinemaRepo) Load(ctx context.Context) (*domain.Snapshot, error) {
	return m.LoadFunc(ctx)
}

func (m *MockCinemaRepo) Save(ctx context.Context, snap *domain.Snapshot) error {
	return m.SaveFunc(ctx, snap)
}
