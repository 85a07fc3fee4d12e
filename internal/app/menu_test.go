package app

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinebox/cinema-box-office/internal/cinema"
	"github.com/cinebox/cinema-box-office/internal/domain"
	"github.com/cinebox/cinema-box-office/internal/mocks"
	appvalidator "github.com/cinebox/cinema-box-office/internal/validator"
)

// newTestApplication builds an application reading the scripted input lines
// and writing to a buffer the test can inspect.
func newTestApplication(t *testing.T, input string) (*application, *bytes.Buffer) {
	t.Helper()

	metadataRepo := &mocks.MockMetadataRepo{
		LookupFunc: func(ctx context.Context, title string) (*domain.Movie, error) {
			return &domain.Movie{Title: title, Runtime: "120 min"}, nil
		},
	}

	out := &bytes.Buffer{}
	app := &application{
		config:    config{adminPassword: "admin123"},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		validator: appvalidator.NewValidator(),
		cinema:    cinema.New(metadataRepo),
		input:     bufio.NewScanner(strings.NewReader(input)),
		out:       out,
	}

	return app, out
}

// sellableScreening primes the cinema with one screening of "Dune" that both
// sale channels accept: VIP room, 7pm, prices configured.
func sellableScreening(t *testing.T, app *application) {
	t.Helper()

	_, err := app.cinema.AddMovie(context.Background(), "Dune")
	require.NoError(t, err)

	app.cinema.SetPrices(decimal.NewFromInt(10), decimal.NewFromInt(5))

	require.NoError(t, app.cinema.AddRoom(1, domain.RoomVIP))

	_, err = app.cinema.AddTime(1, 19, 0)
	require.NoError(t, err)
}

func TestRoleMenuRejectsWrongPassword(t *testing.T) {
	app, out := newTestApplication(t, "1\nwrong\n0\n")

	app.roleMenu()

	assert.Contains(t, out.String(), "Wrong password.")
}

func TestRoleMenuRejectsNonNumericChoice(t *testing.T) {
	app, out := newTestApplication(t, "abc\n0\n")

	app.roleMenu()

	assert.Contains(t, out.String(), "Invalid choice. Please enter a number.")
}

func TestAdminAddMovie(t *testing.T) {
	app, out := newTestApplication(t, "1\nadmin123\n1\nDune\n0\n0\n")

	app.roleMenu()

	assert.Contains(t, out.String(), "MOVIE DETAILS")
	assert.Contains(t, out.String(), "Movie added.")
	assert.Equal(t, 1, app.cinema.TitleCount())
}

func TestAdminSetPrices(t *testing.T) {
	app, out := newTestApplication(t, "10.50\n5\n")

	app.setPrices()

	assert.Contains(t, out.String(), "Ticket prices set.")
	assert.True(t, app.cinema.PricesConfigured())
	assert.True(t, app.cinema.Prices().Base.Equal(decimal.RequireFromString("10.50")))
}

func TestAdminSetPricesRejectsNonPositive(t *testing.T) {
	app, out := newTestApplication(t, "0\n")

	app.setPrices()

	assert.Contains(t, out.String(), "price must be greater than zero")
	assert.False(t, app.cinema.PricesConfigured())
}

func TestAdminAddShowtimeRequiresPrices(t *testing.T) {
	app, out := newTestApplication(t, "")

	app.addShowtime()

	assert.Contains(t, out.String(), "Ticket prices are not set.")
}

func TestAdminAddShowtimeRejectsInvalidClock(t *testing.T) {
	app, out := newTestApplication(t, "1\n24\n30\n")
	sellableScreening(t, app)

	app.addShowtime()

	assert.Contains(t, out.String(), "hour must be at most 23")
}

func TestAdminAddScreeningRoomRefusesReplacement(t *testing.T) {
	app, out := newTestApplication(t, "1\n")
	sellableScreening(t, app)

	app.addScreeningRoom()

	assert.Contains(t, out.String(), "already has a screening room assigned")
}

func TestPublicBuyTicketAtCinema(t *testing.T) {
	app, out := newTestApplication(t, "1\n1\nc7\n")
	sellableScreening(t, app)

	app.buyTicketAtCinema()

	// Seat input is upcased before validation and sale.
	assert.False(t, app.cinema.IsSeatAvailable("Dune", domain.Time{Hour: 19}, "C7"))
	assert.Contains(t, out.String(), "C7")
}

func TestPublicBuyTicketRejectsMalformedSeat(t *testing.T) {
	app, out := newTestApplication(t, "1\n1\n7C\n")
	sellableScreening(t, app)

	app.buyTicketAtCinema()

	assert.Contains(t, out.String(), "seat must be a row letter followed by a seat number")
}

func TestPublicBuyTicketWithoutPrices(t *testing.T) {
	app, out := newTestApplication(t, "")

	app.buyTicketAtCinema()

	assert.Contains(t, out.String(), "Tickets are not on sale yet.")
}

func TestPublicBuyTicketUnsellableMovie(t *testing.T) {
	app, out := newTestApplication(t, "1\n")

	_, err := app.cinema.AddMovie(context.Background(), "Dune")
	require.NoError(t, err)
	app.cinema.SetPrices(decimal.NewFromInt(10), decimal.NewFromInt(5))

	app.buyTicketAtCinema()

	assert.Contains(t, out.String(), "This movie is not available for sale yet.")
}

func TestPublicBuyOnlineAndRedeem(t *testing.T) {
	app, out := newTestApplication(t, "1\n1\nB2\n")
	sellableScreening(t, app)

	app.buyTicketOnline()

	output := out.String()
	assert.Contains(t, output, "Your reservation code is ")

	_, rest, found := strings.Cut(output, "Your reservation code is ")
	require.True(t, found)
	code := rest[:8]

	app.input = bufio.NewScanner(strings.NewReader(code + "\n"))
	out.Reset()

	app.redeemTicket()

	assert.Contains(t, out.String(), "B2")
}

func TestPublicRedeemUnknownCode(t *testing.T) {
	app, out := newTestApplication(t, "NOPE0000\n")

	app.redeemTicket()

	assert.Contains(t, out.String(), "Error: ")
}

func TestAdminRemoveMovie(t *testing.T) {
	app, out := newTestApplication(t, "1\n")
	sellableScreening(t, app)

	app.removeMovie()

	assert.Contains(t, out.String(), "Movie removed.")
	assert.Equal(t, 0, app.cinema.TitleCount())
}
