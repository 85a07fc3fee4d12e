package cinema

import (
	"fmt"
	"strings"

	"github.com/cinebox/cinema-box-office/internal/domain"
)

const (
	colorAvailable   = "\x1b[32m"
	colorUnavailable = "\x1b[31m"
	colorReset       = "\x1b[0m"
)

// Inventory tracks the unsold seats of every materialized screening. A seat
// key present in tickets is free to sell; a key in sold has left the pool and
// stays gone until the ticket is put back or the screening is torn down.
type Inventory struct {
	tickets map[string]*domain.Ticket
	sold    map[string]bool
}

func NewInventory() *Inventory {
	return &Inventory{
		tickets: map[string]*domain.Ticket{},
		sold:    map[string]bool{},
	}
}

// seatKey uniquely identifies one inventory slot. The time goes in as its
// canonical 24-hour form: the 12-hour display form collapses hours 0 and 12
// and must never be part of a key.
func seatKey(title string, t domain.Time, seat string) string {
	return title + "/" + t.Key() + "/" + seat
}

// Materialize inserts a zero-price ticket for every seat of the room that is
// not already tracked. Seats that were sold or held stay that way: calling it
// again never duplicates a free seat and never resurrects a sold one.
func (inv *Inventory) Materialize(title string, t domain.Time, room domain.Room) {
	for _, seat := range room.SeatLabels() {
		key := seatKey(title, t, seat)

		if _, ok := inv.tickets[key]; ok {
			continue
		}
		if inv.sold[key] {
			continue
		}

		inv.tickets[key] = &domain.Ticket{
			Title: title,
			Time:  t,
			Room:  room,
			Seat:  seat,
		}
	}
}

func (inv *Inventory) IsAvailable(title string, t domain.Time, seat string) bool {
	_, ok := inv.tickets[seatKey(title, t, seat)]
	return ok
}

// Take removes the seat from the available pool and returns its ticket.
func (inv *Inventory) Take(title string, t domain.Time, seat string) (*domain.Ticket, error) {
	key := seatKey(title, t, seat)

	ticket, ok := inv.tickets[key]
	if !ok {
		return nil, fmt.Errorf("%w: seat %s", domain.ErrNotAvailableForSale, seat)
	}

	delete(inv.tickets, key)
	inv.sold[key] = true

	return ticket, nil
}

// Put returns a ticket to the available pool under its own seat key, with
// whatever price the caller left on it.
func (inv *Inventory) Put(ticket *domain.Ticket) {
	key := seatKey(ticket.Title, ticket.Time, ticket.Seat)

	delete(inv.sold, key)
	inv.tickets[key] = ticket
}

// HasAnyAvailable reports whether at least one seat of the screening is still
// free.
func (inv *Inventory) HasAnyAvailable(title string, t domain.Time, room domain.Room) bool {
	for _, seat := range room.SeatLabels() {
		if inv.IsAvailable(title, t, seat) {
			return true
		}
	}

	return false
}

func (inv *Inventory) AvailableCount(title string, t domain.Time, room domain.Room) int {
	count := 0
	for _, seat := range room.SeatLabels() {
		if inv.IsAvailable(title, t, seat) {
			count++
		}
	}

	return count
}

// Teardown forgets every seat of the screening, free or sold. Sold seats
// simply vanish from tracking; their tickets stay valid in customers' hands.
func (inv *Inventory) Teardown(title string, t domain.Time, room domain.Room) {
	for _, seat := range room.SeatLabels() {
		key := seatKey(title, t, seat)
		delete(inv.tickets, key)
		delete(inv.sold, key)
	}
}

// MaterializeAll rebuilds the stock of every screening on the schedule.
// Titles without a room have no materializable screenings and are skipped.
func (inv *Inventory) MaterializeAll(s *Schedule) {
	for _, title := range s.Titles() {
		room, ok := s.rooms[title]
		if !ok {
			continue
		}

		for _, t := range s.startTimes[title] {
			inv.Materialize(title, t, room)
		}
	}
}

// FloorPlan renders the screening's seat map in row-major order, green for
// available seats and red for taken ones, with aisles splitting each row into
// side and middle sections.
func (inv *Inventory) FloorPlan(title string, t domain.Time, room domain.Room) string {
	var b strings.Builder

	perRow := room.MaxSeatsPerRow()
	side := 2
	if perRow <= 6 {
		side = 1
	}
	middle := perRow - side*2

	for i, seat := range room.SeatLabels() {
		col := i%perRow + 1

		if inv.IsAvailable(title, t, seat) {
			b.WriteString(colorAvailable)
		} else {
			b.WriteString(colorUnavailable)
		}
		b.WriteString(seat)
		b.WriteString(colorReset)
		b.WriteString(" ")

		if col == side || col == side+middle {
			b.WriteString("  ")
		}
		if col == perRow {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (inv *Inventory) Len() int {
	return len(inv.tickets)
}

func (inv *Inventory) export() ([]*domain.Ticket, []domain.SeatRef) {
	tickets := make([]*domain.Ticket, 0, len(inv.tickets))
	for _, ticket := range inv.tickets {
		tickets = append(tickets, ticket)
	}

	sold := make([]domain.SeatRef, 0, len(inv.sold))
	for key := range inv.sold {
		ref, err := parseSeatKey(key)
		if err != nil {
			continue
		}
		sold = append(sold, ref)
	}

	return tickets, sold
}

func (inv *Inventory) restore(tickets []*domain.Ticket, sold []domain.SeatRef) {
	for _, ticket := range tickets {
		inv.tickets[seatKey(ticket.Title, ticket.Time, ticket.Seat)] = ticket
	}

	for _, ref := range sold {
		inv.sold[seatKey(ref.Title, ref.Time, ref.Seat)] = true
	}
}

func parseSeatKey(key string) (domain.SeatRef, error) {
	seatStart := strings.LastIndex(key, "/")
	if seatStart < 0 {
		return domain.SeatRef{}, fmt.Errorf("malformed seat key %q", key)
	}
	timeStart := strings.LastIndex(key[:seatStart], "/")
	if timeStart < 0 {
		return domain.SeatRef{}, fmt.Errorf("malformed seat key %q", key)
	}

	var t domain.Time
	if err := t.UnmarshalText([]byte(key[timeStart+1 : seatStart])); err != nil {
		return domain.SeatRef{}, err
	}

	return domain.SeatRef{
		Title: key[:timeStart],
		Time:  t,
		Seat:  key[seatStart+1:],
	}, nil
}
