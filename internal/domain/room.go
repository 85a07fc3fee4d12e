package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Room identifies one of the cinema's screening rooms. The set is closed:
// rooms are built into the venue and carry no per-instance state, so a Room
// is a value, not an entity.
type Room int

const (
	RoomStandard Room = iota + 1
	RoomDolbyAtmos
	RoomVIP
	RoomImax
)

type roomSpec struct {
	name           string
	capacity       int
	maxSeatsPerRow int
	soundSystem    string
	screenType     string
	hasVIPSeats    bool
}

var roomSpecs = map[Room]roomSpec{
	RoomStandard:   {"Standard", 100, 10, "Standard Sound System", "2D", false},
	RoomDolbyAtmos: {"Dolby Atmos", 80, 8, "Dolby Atmos", "3D", false},
	RoomVIP:        {"VIP", 40, 4, "Premium Sound System", "2D", true},
	RoomImax:       {"IMAX", 60, 6, "IMAX Sound System", "3D", true},
}

// Rooms returns every screening room in display order.
func Rooms() []Room {
	return []Room{RoomStandard, RoomDolbyAtmos, RoomVIP, RoomImax}
}

func RoomByID(id int) (Room, error) {
	room := Room(id)
	if _, ok := roomSpecs[room]; !ok {
		return 0, fmt.Errorf("%w: screening room %d", ErrNotFound, id)
	}

	return room, nil
}

func (r Room) ID() int {
	return int(r)
}

func (r Room) Capacity() int {
	return roomSpecs[r].capacity
}

func (r Room) MaxSeatsPerRow() int {
	return roomSpecs[r].maxSeatsPerRow
}

func (r Room) SoundSystem() string {
	return roomSpecs[r].soundSystem
}

func (r Room) ScreenType() string {
	return roomSpecs[r].screenType
}

// HasVIPSeats reports whether seats in this room carry the pricing surcharge.
func (r Room) HasVIPSeats() bool {
	return roomSpecs[r].hasVIPSeats
}

func (r Room) String() string {
	return roomSpecs[r].name
}

// SeatLabels enumerates every seat of the room in row-major order. Rows are
// lettered from 'A'; seats number 1..MaxSeatsPerRow and wrap to the next row.
func (r Room) SeatLabels() []string {
	labels := make([]string, 0, r.Capacity())

	row := 'A'
	perRow := r.MaxSeatsPerRow()

	for i := 1; i <= r.Capacity(); i++ {
		col := i % perRow
		if col == 0 {
			col = perRow
		}

		labels = append(labels, string(row)+strconv.Itoa(col))

		if col == perRow {
			row++
		}
	}

	return labels
}

// Card renders the room's information card for the screening rooms listing.
func (r Room) Card() string {
	vip := "No"
	if r.HasVIPSeats() {
		vip = "Yes"
	}

	var b strings.Builder

	b.WriteString("╔════════════════════╗\n")
	b.WriteString(fmt.Sprintf("║      SCREEN %d      ║\n", r.ID()))
	b.WriteString("╚════════════════════╝\n")
	b.WriteString(fmt.Sprintf("Capacity: %d\n", r.Capacity()))
	b.WriteString(fmt.Sprintf("Sound System: %s\n", r.SoundSystem()))
	b.WriteString(fmt.Sprintf("Screen Type: %s\n", r.ScreenType()))
	b.WriteString(fmt.Sprintf("VIP Seats: %s", vip))

	return b.String()
}

func (r Room) MarshalJSON() ([]byte, error) {
	if _, ok := roomSpecs[r]; !ok {
		return nil, fmt.Errorf("unknown screening room %d", int(r))
	}

	return []byte(strconv.Itoa(r.ID())), nil
}

func (r *Room) UnmarshalJSON(data []byte) error {
	id, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("malformed screening room %q: %w", data, err)
	}

	room, err := RoomByID(id)
	if err != nil {
		return err
	}

	*r = room

	return nil
}
