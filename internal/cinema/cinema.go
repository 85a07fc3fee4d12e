package cinema

import (
	"context"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/cinebox/cinema-box-office/internal/domain"
)

// maxReserveAttempts bounds the collision retry loop of an online sale.
// With an 8-character code over 36 symbols a second collision in a row is
// already astronomically unlikely.
const maxReserveAttempts = 5

// Cinema composes the schedule, the seat inventory, the reservation ledger,
// and pricing into the operations the menus call. It owns all of them
// exclusively for the life of the process; nothing here is safe for
// concurrent use.
type Cinema struct {
	schedule  *Schedule
	inventory *Inventory
	ledger    *Ledger
	prices    PriceList
	metadata  domain.MetadataRepository
	codes     CodeGenerator
	logger    *slog.Logger
}

type Option func(*Cinema)

func WithCodeGenerator(codes CodeGenerator) Option {
	return func(c *Cinema) {
		c.codes = codes
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Cinema) {
		c.logger = logger
	}
}

func New(metadata domain.MetadataRepository, opts ...Option) *Cinema {
	inventory := NewInventory()

	c := &Cinema{
		schedule:  NewSchedule(inventory),
		inventory: inventory,
		ledger:    NewLedger(),
		metadata:  metadata,
		codes:     NewRandomCodeGenerator(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FromSnapshot rebuilds a cinema from a persisted snapshot.
func FromSnapshot(snap *domain.Snapshot, metadata domain.MetadataRepository, opts ...Option) *Cinema {
	c := New(metadata, opts...)

	c.schedule.restore(snap)
	c.inventory.restore(snap.Available, snap.Sold)
	c.ledger.restore(snap.Held)
	c.prices = PriceList{Base: snap.BasePrice, Surcharge: snap.Surcharge}

	return c
}

// Snapshot exports the whole cinema state for persistence.
func (c *Cinema) Snapshot() *domain.Snapshot {
	snap := domain.NewSnapshot()

	c.schedule.export(snap)
	snap.Available, snap.Sold = c.inventory.export()
	snap.Held = c.ledger.export()
	snap.BasePrice = c.prices.Base
	snap.Surcharge = c.prices.Surcharge

	return snap
}

// AddMovie resolves the raw title against the metadata service and registers
// the canonical record on the schedule.
func (c *Cinema) AddMovie(ctx context.Context, rawTitle string) (*domain.Movie, error) {
	movie, err := c.metadata.Lookup(ctx, rawTitle)
	if err != nil {
		return nil, err
	}

	if err := c.schedule.AddMovie(movie); err != nil {
		return nil, err
	}

	c.logger.Info("movie added", "title", movie.Title)

	return movie, nil
}

// AddTime adds a start time to the indexed title. Showtimes cannot be
// published before pricing is configured: every materialized seat is sellable
// the moment it exists.
func (c *Cinema) AddTime(index, hour, minute int) (domain.Time, error) {
	if !c.prices.Configured() {
		return domain.Time{}, domain.ErrPricesNotSet
	}

	t, err := c.schedule.AddTime(index, hour, minute)
	if err != nil {
		return domain.Time{}, err
	}

	c.logger.Info("start time added", "index", index, "time", t.Key())

	return t, nil
}

func (c *Cinema) AddRoom(index int, room domain.Room) error {
	return c.schedule.AddRoom(index, room)
}

func (c *Cinema) RemoveTime(index int, t domain.Time) error {
	return c.schedule.RemoveTime(index, t)
}

func (c *Cinema) RemoveRoom(index int) (CascadeResult, error) {
	return c.schedule.RemoveRoom(index)
}

// RemoveMovie drops the indexed title and everything that hangs off it:
// room, start times, screening inventory, and any reservation codes still
// pointing at the title.
func (c *Cinema) RemoveMovie(index int) (CascadeResult, error) {
	title, err := c.schedule.TitleByIndex(index)
	if err != nil {
		return CascadeResult{}, err
	}

	result, err := c.schedule.RemoveMovie(index)
	if err != nil {
		return result, err
	}

	if purged := c.ledger.PurgeTitle(title); purged > 0 {
		c.logger.Info("purged reservations of removed movie", "title", title, "count", purged)
	}

	return result, nil
}

func (c *Cinema) SetPrices(base, surcharge decimal.Decimal) {
	c.prices = PriceList{Base: base, Surcharge: surcharge}
}

func (c *Cinema) Prices() PriceList {
	return c.prices
}

func (c *Cinema) PricesConfigured() bool {
	return c.prices.Configured()
}

// SellAtCounter sells a seat over the counter and hands the ticket straight
// to the customer.
func (c *Cinema) SellAtCounter(title string, t domain.Time, room domain.Room, seat string) (*domain.Ticket, error) {
	if !c.prices.Configured() {
		return nil, domain.ErrPricesNotSet
	}

	ticket, err := c.inventory.Take(title, t, seat)
	if err != nil {
		return nil, err
	}

	ticket.Price = c.prices.Total(room)

	c.logger.Info("ticket sold at counter", "title", title, "time", t.Key(), "seat", seat)

	return ticket, nil
}

// SellOnline sells a seat through the online channel. The customer gets an
// opaque reservation code; the ticket itself waits in the ledger until the
// code is redeemed at the counter. A ledger code collision returns the ticket
// to inventory at price zero and retries the whole sale from the top, a
// bounded number of times.
func (c *Cinema) SellOnline(title string, t domain.Time, room domain.Room, seat string) (string, error) {
	if !c.prices.Configured() {
		return "", domain.ErrPricesNotSet
	}

	for attempt := 1; attempt <= maxReserveAttempts; attempt++ {
		ticket, err := c.inventory.Take(title, t, seat)
		if err != nil {
			return "", err
		}

		ticket.Price = c.prices.Total(room)

		code := c.codes.Code()
		if err := c.ledger.Reserve(code, ticket); err != nil {
			ticket.Price = decimal.Zero
			c.inventory.Put(ticket)
			c.logger.Warn("reservation code collision", "code", code, "attempt", attempt)
			continue
		}

		c.logger.Info("ticket reserved online", "title", title, "time", t.Key(), "seat", seat, "code", code)

		return code, nil
	}

	return "", domain.ErrReservationRetriesExhausted
}

// Redeem resolves a reservation code to its held ticket, exactly once.
func (c *Cinema) Redeem(code string) (*domain.Ticket, error) {
	ticket, err := c.ledger.Redeem(code)
	if err != nil {
		return nil, err
	}

	c.logger.Info("ticket redeemed", "code", code, "title", ticket.Title, "seat", ticket.Seat)

	return ticket, nil
}

// RegenerateStock rebuilds seat inventory for every screening on the
// schedule. Already-sold seats stay sold.
func (c *Cinema) RegenerateStock() {
	c.inventory.MaterializeAll(c.schedule)
	c.logger.Info("ticket stock regenerated", "available", c.inventory.Len())
}

func (c *Cinema) IsSeatAvailable(title string, t domain.Time, seat string) bool {
	return c.inventory.IsAvailable(title, t, seat)
}

func (c *Cinema) HasAnyAvailable(title string, t domain.Time, room domain.Room) bool {
	return c.inventory.HasAnyAvailable(title, t, room)
}

func (c *Cinema) FloorPlan(title string, t domain.Time, room domain.Room) string {
	return c.inventory.FloorPlan(title, t, room)
}

func (c *Cinema) Billboard() string {
	return c.schedule.String()
}

func (c *Cinema) TitlesTable() (string, error) {
	return c.schedule.TitlesTable()
}

func (c *Cinema) ShowtimesList(title string) (string, error) {
	return c.schedule.ShowtimesList(title)
}

func (c *Cinema) TitleCount() int {
	return c.schedule.Len()
}

func (c *Cinema) TitleByIndex(index int) (string, error) {
	return c.schedule.TitleByIndex(index)
}

func (c *Cinema) MovieByIndex(index int) (*domain.Movie, error) {
	return c.schedule.MovieByIndex(index)
}

func (c *Cinema) TimeByIndex(title string, index int) (domain.Time, error) {
	return c.schedule.TimeByIndex(title, index)
}

func (c *Cinema) RoomByTitle(title string) (domain.Room, error) {
	return c.schedule.RoomByTitle(title)
}

func (c *Cinema) IsAvailableForSale(index int) (bool, error) {
	return c.schedule.IsAvailableForSale(index)
}

func (c *Cinema) HasRoomByIndex(index int) (bool, error) {
	return c.schedule.HasRoomByIndex(index)
}

func (c *Cinema) HasTimesByIndex(index int) (bool, error) {
	return c.schedule.HasTimesByIndex(index)
}
