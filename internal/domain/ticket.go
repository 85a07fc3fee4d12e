package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Ticket is one sellable seat of a (title, time, room) screening. Price is
// zero until the ticket is sold.
type Ticket struct {
	Title string          `json:"title"`
	Time  Time            `json:"time"`
	Room  Room            `json:"room"`
	Seat  string          `json:"seat"`
	Price decimal.Decimal `json:"price"`
}

func (t *Ticket) String() string {
	var b strings.Builder

	b.WriteString("╔═══════════════════════╗\n")
	b.WriteString("║      MOVIE TICKET     ║\n")
	b.WriteString("╚═══════════════════════╝\n")
	b.WriteString(fmt.Sprintf("Title: %s\n", t.Title))
	b.WriteString(fmt.Sprintf("Start Time: %s\n", t.Time))
	b.WriteString(fmt.Sprintf("Screening Room: %d\n", t.Room.ID()))
	b.WriteString(fmt.Sprintf("Seat: %s\n", t.Seat))
	b.WriteString(fmt.Sprintf("Price: $%s", t.Price.StringFixed(2)))

	return b.String()
}
