package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinebox/cinema-box-office/internal/domain"
)

func testSnapshot() *domain.Snapshot {
	snap := domain.NewSnapshot()

	snap.Titles = []string{"Dune"}
	snap.Movies["Dune"] = &domain.Movie{Title: "Dune", Year: "2021", Runtime: "155 min"}
	snap.Rooms["Dune"] = domain.RoomVIP
	snap.StartTimes["Dune"] = []domain.Time{{Hour: 19, Minute: 0}}
	snap.Available = []*domain.Ticket{
		{Title: "Dune", Time: domain.Time{Hour: 19}, Room: domain.RoomVIP, Seat: "A1"},
	}
	snap.Sold = []domain.SeatRef{
		{Title: "Dune", Time: domain.Time{Hour: 19}, Seat: "A2"},
	}
	snap.Held = map[string]*domain.Ticket{
		"CODE0001": {Title: "Dune", Time: domain.Time{Hour: 19}, Room: domain.RoomVIP, Seat: "A3", Price: decimal.NewFromInt(15)},
	}
	snap.BasePrice = decimal.NewFromInt(10)
	snap.Surcharge = decimal.NewFromInt(5)

	return snap
}

func TestFileCinemaRepositoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cinema_data.json")
	repo := NewFileCinemaRepository(path)

	want := testSnapshot()
	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestFileCinemaRepositoryLoadMissingFile(t *testing.T) {
	repo := NewFileCinemaRepository(filepath.Join(t.TempDir(), "missing.json"))

	snap, err := repo.Load(context.Background())
	require.NoError(t, err)

	assert.Empty(t, snap.Titles)
	assert.NotNil(t, snap.Movies)
	assert.NotNil(t, snap.Held)
}

func TestFileCinemaRepositoryLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cinema_data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo := NewFileCinemaRepository(path)

	_, err := repo.Load(context.Background())
	assert.Error(t, err)
}
