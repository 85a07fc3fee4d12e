package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/cinebox/cinema-box-office/internal/domain"
	appvalidator "github.com/cinebox/cinema-box-office/internal/validator"
)

// errorMessage turns any error crossing the menu boundary into one line the
// operator can act on. Nothing that reaches here is fatal.
func errorMessage(err error) string {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		parts := make([]string, len(vErrs))
		for i, fieldErr := range vErrs {
			parts[i] = fmt.Sprintf("%s %s", strings.ToLower(fieldErr.Field()), appvalidator.ValidationMessage(fieldErr))
		}
		return strings.Join(parts, "; ")
	}

	switch {
	case errors.Is(err, domain.ErrEmptyCatalog):
		return "No movies available."
	case errors.Is(err, domain.ErrNotAvailableForSale):
		return "This seat is not available."
	case errors.Is(err, domain.ErrPricesNotSet):
		return "Ticket prices are not set. Set them in the admin menu first."
	case errors.Is(err, domain.ErrEmptyTitle):
		return "Title cannot be empty."
	case errors.Is(err, domain.ErrMetadataSearchFailed):
		return "Movie search failed, please try again later."
	case errors.Is(err, domain.ErrReservationRetriesExhausted):
		return "Could not issue a reservation code, please try again."
	default:
		return err.Error()
	}
}

func (app *application) reportError(err error) {
	app.println("Error: " + errorMessage(err))
}
