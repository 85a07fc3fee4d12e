package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cinebox/cinema-box-office/internal/cinema"
	"github.com/cinebox/cinema-box-office/internal/domain"
)

const lookupTimeout = 10 * time.Second

func (app *application) println(args ...any) {
	fmt.Fprintln(app.out, args...)
}

func (app *application) printf(format string, args ...any) {
	fmt.Fprintf(app.out, format, args...)
}

func (app *application) promptLine(prompt string) string {
	app.printf("%s", prompt)

	if !app.input.Scan() {
		return ""
	}

	return strings.TrimSpace(app.input.Text())
}

func (app *application) promptInt(prompt string) (int, error) {
	line := app.promptLine(prompt)

	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", line)
	}

	return n, nil
}

func (app *application) roleMenu() {
	for {
		app.println("╔══════════════════════════╗")
		app.println("║       CINEMA BOX         ║")
		app.println("╠══════════════════════════╣")
		app.println("║ 1. Admin                 ║")
		app.println("║ 2. Public                ║")
		app.println("║ 0. Exit                  ║")
		app.println("╚══════════════════════════╝")

		choice, err := app.promptInt("Enter your choice: ")
		if err != nil {
			app.println("Invalid choice. Please enter a number.")
			continue
		}

		switch choice {
		case 1:
			if app.promptLine("Enter admin password: ") == app.config.adminPassword {
				app.adminMenu()
			} else {
				app.println("Wrong password.")
			}
		case 2:
			app.publicMenu()
		case 0:
			return
		default:
			app.println("Invalid choice. Please try again.")
		}

		app.println()
	}
}

func (app *application) adminMenu() {
	for {
		app.println("╔═════════════════════════════╗")
		app.println("║       Cinema Menu           ║")
		app.println("╠═════════════════════════════╣")
		app.println("║ 1. Add Movie                ║")
		app.println("║ 2. Add Screening Room       ║")
		app.println("║ 3. Add Start Time           ║")
		app.println("║ 4. Remove Movie             ║")
		app.println("║ 5. Remove Start Time        ║")
		app.println("║ 6. Remove Screening Room    ║")
		app.println("║ 7. Set Ticket Price         ║")
		app.println("║ 8. Regenerate Ticket Stock  ║")
		app.println("║ 0. Exit                     ║")
		app.println("╚═════════════════════════════╝")

		choice, err := app.promptInt("Enter your choice: ")
		if err != nil {
			app.println("Invalid choice. Please enter a number.")
			continue
		}

		switch choice {
		case 1:
			app.addMovie()
		case 2:
			app.addScreeningRoom()
		case 3:
			app.addShowtime()
		case 4:
			app.removeMovie()
		case 5:
			app.removeShowtime()
		case 6:
			app.removeScreeningRoom()
		case 7:
			app.setPrices()
		case 8:
			app.cinema.RegenerateStock()
			app.println("Ticket stock regenerated.")
		case 0:
			return
		default:
			app.println("Invalid choice. Please try again.")
		}

		app.println()
	}
}

func (app *application) publicMenu() {
	for {
		app.println("╔══════════════════════════╗")
		app.println("║       Public Menu        ║")
		app.println("╠══════════════════════════╣")
		app.println("║ 1. Showtimes             ║")
		app.println("║ 2. Show Movie Details    ║")
		app.println("║ 3. Show Screening Rooms  ║")
		app.println("║ 4. Buy Ticket At Cinema  ║")
		app.println("║ 5. Buy Ticket Online     ║")
		app.println("║ 6. Redeem Ticket         ║")
		app.println("║ 0. Exit                  ║")
		app.println("╚══════════════════════════╝")

		choice, err := app.promptInt("Enter your choice: ")
		if err != nil {
			app.println("Invalid choice. Please enter a number.")
			continue
		}

		switch choice {
		case 1:
			app.println(app.cinema.Billboard())
		case 2:
			app.showMovieDetails()
		case 3:
			app.showScreeningRooms()
		case 4:
			app.buyTicketAtCinema()
		case 5:
			app.buyTicketOnline()
		case 6:
			app.redeemTicket()
		case 0:
			return
		default:
			app.println("Invalid choice. Please try again.")
		}

		app.println()
	}
}

func (app *application) addMovie() {
	title := app.promptLine("Enter the movie title: ")

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	movie, err := app.cinema.AddMovie(ctx, title)
	if err != nil {
		app.reportError(err)
		return
	}

	app.println(movie.Details())
	app.println("Movie added.")
}

// chooseMovie shows the numbered billboard and resolves the operator's pick.
func (app *application) chooseMovie() (int, bool) {
	table, err := app.cinema.TitlesTable()
	if err != nil {
		app.reportError(err)
		return 0, false
	}
	app.println(table)

	index, err := app.promptInt("Enter the movie ID: ")
	if err != nil {
		app.reportError(err)
		return 0, false
	}

	return index, true
}

func (app *application) addScreeningRoom() {
	index, ok := app.chooseMovie()
	if !ok {
		return
	}

	hasRoom, err := app.cinema.HasRoomByIndex(index)
	if err != nil {
		app.reportError(err)
		return
	}
	if hasRoom {
		app.println("This movie already has a screening room assigned. Remove it first.")
		return
	}

	for _, room := range domain.Rooms() {
		app.println(room.Card())
	}

	id, err := app.promptInt("Enter the screening room ID: ")
	if err != nil {
		app.reportError(err)
		return
	}

	room, err := domain.RoomByID(id)
	if err != nil {
		app.reportError(err)
		return
	}

	if err := app.cinema.AddRoom(index, room); err != nil {
		app.reportError(err)
		return
	}

	app.printf("Screening room %d assigned.\n", room.ID())
}

type showtimeInput struct {
	Hour   int `validate:"min=0,max=23"`
	Minute int `validate:"min=0,max=59"`
}

func (app *application) addShowtime() {
	if !app.cinema.PricesConfigured() {
		app.reportError(domain.ErrPricesNotSet)
		return
	}

	index, ok := app.chooseMovie()
	if !ok {
		return
	}

	hour, err := app.promptInt("Enter the hour (0-23): ")
	if err != nil {
		app.reportError(err)
		return
	}

	minute, err := app.promptInt("Enter the minute (0-59): ")
	if err != nil {
		app.reportError(err)
		return
	}

	if err := app.validator.Struct(showtimeInput{Hour: hour, Minute: minute}); err != nil {
		app.reportError(err)
		return
	}

	t, err := app.cinema.AddTime(index, hour, minute)
	if err != nil {
		app.reportError(err)
		return
	}

	app.printf("Start time %s added.\n", t)
}

func (app *application) removeMovie() {
	index, ok := app.chooseMovie()
	if !ok {
		return
	}

	result, err := app.cinema.RemoveMovie(index)
	if err != nil {
		app.reportError(err)
		return
	}

	app.reportCascade(result)
	app.println("Movie removed.")
}

// chooseShowtime lists a title's start times and resolves the pick.
func (app *application) chooseShowtime(title string) (domain.Time, bool) {
	list, err := app.cinema.ShowtimesList(title)
	if err != nil {
		app.reportError(err)
		return domain.Time{}, false
	}
	app.println(list)

	timeIndex, err := app.promptInt("Enter the start time ID: ")
	if err != nil {
		app.reportError(err)
		return domain.Time{}, false
	}

	t, err := app.cinema.TimeByIndex(title, timeIndex)
	if err != nil {
		app.reportError(err)
		return domain.Time{}, false
	}

	return t, true
}

func (app *application) removeShowtime() {
	index, ok := app.chooseMovie()
	if !ok {
		return
	}

	title, err := app.cinema.TitleByIndex(index)
	if err != nil {
		app.reportError(err)
		return
	}

	t, ok := app.chooseShowtime(title)
	if !ok {
		return
	}

	if err := app.cinema.RemoveTime(index, t); err != nil {
		app.reportError(err)
		return
	}

	app.printf("Start time %s removed.\n", t)
}

func (app *application) removeScreeningRoom() {
	index, ok := app.chooseMovie()
	if !ok {
		return
	}

	result, err := app.cinema.RemoveRoom(index)
	if err != nil {
		app.reportError(err)
		return
	}

	app.reportCascade(result)
	app.println("Screening room removed.")
}

func (app *application) reportCascade(result cinema.CascadeResult) {
	if !result.Failed() {
		return
	}

	for _, failure := range result.Failures {
		app.printf("Warning: could not remove the %s screening: %s\n", failure.Time, errorMessage(failure.Err))
	}
}

func (app *application) setPrices() {
	base, ok := app.promptPrice("Enter the base ticket price: ")
	if !ok {
		return
	}

	surcharge, ok := app.promptPrice("Enter the VIP surcharge: ")
	if !ok {
		return
	}

	app.cinema.SetPrices(base, surcharge)
	app.println("Ticket prices set.")
}

func (app *application) promptPrice(prompt string) (decimal.Decimal, bool) {
	line := app.promptLine(prompt)

	price, err := decimal.NewFromString(line)
	if err != nil {
		app.printf("Error: %q is not a valid price\n", line)
		return decimal.Decimal{}, false
	}

	if !price.IsPositive() {
		app.println("Error: price must be greater than zero")
		return decimal.Decimal{}, false
	}

	return price, true
}

func (app *application) showMovieDetails() {
	index, ok := app.chooseMovie()
	if !ok {
		return
	}

	movie, err := app.cinema.MovieByIndex(index)
	if err != nil {
		app.reportError(err)
		return
	}

	app.println(movie.Details())
}

func (app *application) showScreeningRooms() {
	for _, room := range domain.Rooms() {
		app.println(room.Card())
		app.println()
	}
}

type seatInput struct {
	Seat string `validate:"required,seat"`
}

// chooseSeat walks the customer from the billboard down to one free seat of
// one screening.
func (app *application) chooseSeat() (title string, t domain.Time, room domain.Room, seat string, ok bool) {
	if !app.cinema.PricesConfigured() {
		app.println("Tickets are not on sale yet.")
		return "", domain.Time{}, 0, "", false
	}

	index, chosen := app.chooseMovie()
	if !chosen {
		return "", domain.Time{}, 0, "", false
	}

	forSale, err := app.cinema.IsAvailableForSale(index)
	if err != nil {
		app.reportError(err)
		return "", domain.Time{}, 0, "", false
	}
	if !forSale {
		app.println("This movie is not available for sale yet.")
		return "", domain.Time{}, 0, "", false
	}

	title, err = app.cinema.TitleByIndex(index)
	if err != nil {
		app.reportError(err)
		return "", domain.Time{}, 0, "", false
	}

	t, chosen = app.chooseShowtime(title)
	if !chosen {
		return "", domain.Time{}, 0, "", false
	}

	room, err = app.cinema.RoomByTitle(title)
	if err != nil {
		app.reportError(err)
		return "", domain.Time{}, 0, "", false
	}

	if !app.cinema.HasAnyAvailable(title, t, room) {
		app.println("No seats left for this screening.")
		return "", domain.Time{}, 0, "", false
	}

	app.println(app.cinema.FloorPlan(title, t, room))

	seat = strings.ToUpper(app.promptLine("Enter the seat, e.g. C7: "))
	if err := app.validator.Struct(seatInput{Seat: seat}); err != nil {
		app.reportError(err)
		return "", domain.Time{}, 0, "", false
	}

	return title, t, room, seat, true
}

func (app *application) buyTicketAtCinema() {
	title, t, room, seat, ok := app.chooseSeat()
	if !ok {
		return
	}

	ticket, err := app.cinema.SellAtCounter(title, t, room, seat)
	if err != nil {
		app.reportError(err)
		return
	}

	app.println(ticket.String())
}

func (app *application) buyTicketOnline() {
	title, t, room, seat, ok := app.chooseSeat()
	if !ok {
		return
	}

	code, err := app.cinema.SellOnline(title, t, room, seat)
	if err != nil {
		app.reportError(err)
		return
	}

	app.printf("Your reservation code is %s. Redeem it at the counter.\n", code)
}

func (app *application) redeemTicket() {
	code := strings.ToUpper(app.promptLine("Enter your reservation code: "))

	ticket, err := app.cinema.Redeem(code)
	if err != nil {
		app.reportError(err)
		return
	}

	app.println(ticket.String())
}
