package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// SeatRef names one seat of one screening. Sold seats are tracked by
// reference so that stock regeneration never resurrects them.
type SeatRef struct {
	Title string `json:"title"`
	Time  Time   `json:"time"`
	Seat  string `json:"seat"`
}

// Snapshot is the whole cinema state as one serializable document. It is the
// unit of persistence: repositories load and store it opaquely, once at
// startup and once on orderly shutdown.
type Snapshot struct {
	Titles     []string           `json:"titles"`
	Movies     map[string]*Movie  `json:"movies"`
	Rooms      map[string]Room    `json:"rooms"`
	StartTimes map[string][]Time  `json:"start_times"`
	Available  []*Ticket          `json:"available"`
	Sold       []SeatRef          `json:"sold"`
	Held       map[string]*Ticket `json:"held"`
	BasePrice  decimal.Decimal    `json:"base_price"`
	Surcharge  decimal.Decimal    `json:"surcharge"`
}

// NewSnapshot returns the state of a cinema with nothing scheduled or sold.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Movies:     map[string]*Movie{},
		Rooms:      map[string]Room{},
		StartTimes: map[string][]Time{},
		Held:       map[string]*Ticket{},
	}
}

// CinemaRepository persists the snapshot between sessions. Load returns a
// fresh empty snapshot when nothing has been stored yet.
type CinemaRepository interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
}
