package cinema

import (
	"fmt"
	"math/rand"

	"github.com/cinebox/cinema-box-office/internal/domain"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 8
)

// CodeGenerator produces candidate reservation codes. Tests substitute a
// deterministic generator to force collisions.
type CodeGenerator interface {
	Code() string
}

type randomCodeGenerator struct{}

func NewRandomCodeGenerator() CodeGenerator {
	return randomCodeGenerator{}
}

func (randomCodeGenerator) Code() string {
	buf := make([]byte, codeLength)
	for i := range buf {
		buf[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}

	return string(buf)
}

// Ledger holds tickets sold online until their reservation code is redeemed
// at the counter. Each code resolves to its ticket exactly once.
type Ledger struct {
	held map[string]*domain.Ticket
}

func NewLedger() *Ledger {
	return &Ledger{held: map[string]*domain.Ticket{}}
}

// Reserve files the ticket under code. A code that is already filed is a
// collision and is reported, never overwritten.
func (l *Ledger) Reserve(code string, ticket *domain.Ticket) error {
	if _, ok := l.held[code]; ok {
		return fmt.Errorf("%w: reservation code %s", domain.ErrAlreadyExists, code)
	}

	l.held[code] = ticket

	return nil
}

// Redeem removes the held ticket and hands it back.
func (l *Ledger) Redeem(code string) (*domain.Ticket, error) {
	ticket, ok := l.held[code]
	if !ok {
		return nil, fmt.Errorf("%w: reservation code %s", domain.ErrNotFound, code)
	}

	delete(l.held, code)

	return ticket, nil
}

// PurgeTitle drops every held ticket of the title and returns how many were
// dropped. Used when a movie leaves the schedule so no code can resolve to a
// screening that no longer exists.
func (l *Ledger) PurgeTitle(title string) int {
	purged := 0
	for code, ticket := range l.held {
		if ticket.Title == title {
			delete(l.held, code)
			purged++
		}
	}

	return purged
}

func (l *Ledger) HasTitle(title string) bool {
	for _, ticket := range l.held {
		if ticket.Title == title {
			return true
		}
	}

	return false
}

func (l *Ledger) Len() int {
	return len(l.held)
}

func (l *Ledger) export() map[string]*domain.Ticket {
	held := make(map[string]*domain.Ticket, len(l.held))
	for code, ticket := range l.held {
		held[code] = ticket
	}

	return held
}

func (l *Ledger) restore(held map[string]*domain.Ticket) {
	for code, ticket := range held {
		l.held[code] = ticket
	}
}
