package cinema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinebox/cinema-box-office/internal/domain"
)

var sevenPM = domain.Time{Hour: 19, Minute: 0}

func TestInventoryMaterialize(t *testing.T) {
	inv := NewInventory()

	inv.Materialize("Dune", sevenPM, domain.RoomStandard)

	assert.Equal(t, domain.RoomStandard.Capacity(), inv.Len())
	assert.True(t, inv.IsAvailable("Dune", sevenPM, "A1"))
	assert.True(t, inv.IsAvailable("Dune", sevenPM, "J10"))
	assert.False(t, inv.IsAvailable("Dune", sevenPM, "K1"))
}

func TestInventoryMaterializeIsIdempotent(t *testing.T) {
	inv := NewInventory()

	inv.Materialize("Dune", sevenPM, domain.RoomVIP)
	inv.Materialize("Dune", sevenPM, domain.RoomVIP)

	assert.Equal(t, domain.RoomVIP.Capacity(), inv.Len())
}

func TestInventoryMaterializeDoesNotResurrectSoldSeats(t *testing.T) {
	inv := NewInventory()
	inv.Materialize("Dune", sevenPM, domain.RoomVIP)

	_, err := inv.Take("Dune", sevenPM, "B2")
	require.NoError(t, err)

	inv.Materialize("Dune", sevenPM, domain.RoomVIP)

	assert.False(t, inv.IsAvailable("Dune", sevenPM, "B2"))
	assert.Equal(t, domain.RoomVIP.Capacity()-1, inv.Len())
}

func TestInventoryTake(t *testing.T) {
	inv := NewInventory()
	inv.Materialize("Dune", sevenPM, domain.RoomStandard)

	ticket, err := inv.Take("Dune", sevenPM, "C7")
	require.NoError(t, err)

	assert.Equal(t, "Dune", ticket.Title)
	assert.Equal(t, sevenPM, ticket.Time)
	assert.Equal(t, domain.RoomStandard, ticket.Room)
	assert.Equal(t, "C7", ticket.Seat)

	_, err = inv.Take("Dune", sevenPM, "C7")
	assert.ErrorIs(t, err, domain.ErrNotAvailableForSale)
}

func TestInventoryTakeUnknownSeat(t *testing.T) {
	inv := NewInventory()

	_, err := inv.Take("Dune", sevenPM, "A1")

	assert.ErrorIs(t, err, domain.ErrNotAvailableForSale)
}

func TestInventoryPutReturnsSeatToPool(t *testing.T) {
	inv := NewInventory()
	inv.Materialize("Dune", sevenPM, domain.RoomStandard)

	ticket, err := inv.Take("Dune", sevenPM, "C7")
	require.NoError(t, err)

	inv.Put(ticket)

	assert.True(t, inv.IsAvailable("Dune", sevenPM, "C7"))

	// The seat is sellable again, not stuck in the sold set.
	_, err = inv.Take("Dune", sevenPM, "C7")
	assert.NoError(t, err)
}

func TestInventoryTeardown(t *testing.T) {
	inv := NewInventory()
	inv.Materialize("Dune", sevenPM, domain.RoomVIP)

	_, err := inv.Take("Dune", sevenPM, "A1")
	require.NoError(t, err)

	inv.Teardown("Dune", sevenPM, domain.RoomVIP)

	assert.Equal(t, 0, inv.Len())

	// After teardown the seat materializes fresh, sold or not.
	inv.Materialize("Dune", sevenPM, domain.RoomVIP)
	assert.True(t, inv.IsAvailable("Dune", sevenPM, "A1"))
}

func TestInventoryHasAnyAvailable(t *testing.T) {
	inv := NewInventory()
	inv.Materialize("Dune", sevenPM, domain.RoomVIP)

	assert.True(t, inv.HasAnyAvailable("Dune", sevenPM, domain.RoomVIP))

	for _, seat := range domain.RoomVIP.SeatLabels() {
		_, err := inv.Take("Dune", sevenPM, seat)
		require.NoError(t, err)
	}

	assert.False(t, inv.HasAnyAvailable("Dune", sevenPM, domain.RoomVIP))
	assert.Equal(t, 0, inv.AvailableCount("Dune", sevenPM, domain.RoomVIP))
}

func TestInventoryFloorPlan(t *testing.T) {
	inv := NewInventory()
	inv.Materialize("Dune", sevenPM, domain.RoomVIP)

	_, err := inv.Take("Dune", sevenPM, "A2")
	require.NoError(t, err)

	plan := inv.FloorPlan("Dune", sevenPM, domain.RoomVIP)

	lines := strings.Split(strings.TrimRight(plan, "\n"), "\n")
	assert.Len(t, lines, domain.RoomVIP.Capacity()/domain.RoomVIP.MaxSeatsPerRow())

	assert.Contains(t, lines[0], colorAvailable+"A1")
	assert.Contains(t, lines[0], colorUnavailable+"A2")
	assert.Contains(t, lines[1], "B1")
}

func TestInventoryExportRestoreRoundTrip(t *testing.T) {
	inv := NewInventory()
	inv.Materialize("Lawrence of Arabia", sevenPM, domain.RoomVIP)

	_, err := inv.Take("Lawrence of Arabia", sevenPM, "A3")
	require.NoError(t, err)

	tickets, sold := inv.export()

	restored := NewInventory()
	restored.restore(tickets, sold)

	assert.Equal(t, inv.Len(), restored.Len())
	assert.False(t, restored.IsAvailable("Lawrence of Arabia", sevenPM, "A3"))

	// Sold seats survive the round trip: regeneration must not bring them back.
	restored.Materialize("Lawrence of Arabia", sevenPM, domain.RoomVIP)
	assert.False(t, restored.IsAvailable("Lawrence of Arabia", sevenPM, "A3"))
}

func TestParseSeatKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		want    domain.SeatRef
		wantErr bool
	}{
		{
			name: "plain title",
			key:  "Dune/19:00/A1",
			want: domain.SeatRef{Title: "Dune", Time: sevenPM, Seat: "A1"},
		},
		{
			name: "title containing a slash",
			key:  "Face/Off/19:00/B4",
			want: domain.SeatRef{Title: "Face/Off", Time: sevenPM, Seat: "B4"},
		},
		{name: "no separators", key: "garbage", wantErr: true},
		{name: "malformed time", key: "Dune/late/A1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSeatKey(tt.key)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
