package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/cinebox/cinema-box-office/internal/domain"
)

// FileCinemaRepository stores the cinema snapshot as a JSON document on disk.
type FileCinemaRepository struct {
	path string
}

func NewFileCinemaRepository(path string) *FileCinemaRepository {
	return &FileCinemaRepository{
		path: path,
	}
}

func (r *FileCinemaRepository) Load(ctx context.Context) (*domain.Snapshot, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NewSnapshot(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading cinema snapshot: %w", err)
	}

	snap := domain.NewSnapshot()
	if err := json.Unmarshal(data, snap); err != nil {
		return nil, fmt.Errorf("decoding cinema snapshot: %w", err)
	}

	return snap, nil
}

func (r *FileCinemaRepository) Save(ctx context.Context, snap *domain.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding cinema snapshot: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("writing cinema snapshot: %w", err)
	}

	return nil
}
