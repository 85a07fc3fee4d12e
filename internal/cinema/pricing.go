package cinema

import (
	"github.com/shopspring/decimal"

	"github.com/cinebox/cinema-box-office/internal/domain"
)

// PriceList is the cinema-wide ticket pricing shared by both sale channels.
type PriceList struct {
	Base      decimal.Decimal
	Surcharge decimal.Decimal
}

// Total returns the price of a seat in the given room. The surcharge applies
// only to rooms with VIP seating.
func (p PriceList) Total(room domain.Room) decimal.Decimal {
	if room.HasVIPSeats() {
		return p.Base.Add(p.Surcharge)
	}

	return p.Base
}

// Configured reports whether both price components have been set. Sales and
// new showtimes are blocked until they are.
func (p PriceList) Configured() bool {
	return !p.Base.IsZero() && !p.Surcharge.IsZero()
}
