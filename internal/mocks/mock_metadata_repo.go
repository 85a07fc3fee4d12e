package mocks

import (
	"context"

	"github.com/cinebox/cinema-box-office/internal/domain"
)

type MockMetadataRepo struct {
	domain.MetadataRepository
	LookupFunc func(ctx context.Context, title string) (*domain.Movie, error)
}

func (m *MockMetadataRepo) Lookup(ctx context.Context, title string) (*domain.Movie, error) {
	return m.LookupFunc(ctx, title)
}
