package domain

import "errors"

var (
	ErrAlreadyExists               = errors.New("already exists")
	ErrNotFound                    = errors.New("not found")
	ErrInvalidIndex                = errors.New("invalid index")
	ErrEmptyCatalog                = errors.New("no movies available")
	ErrNotAvailableForSale         = errors.New("not available for sale")
	ErrMetadataSearchFailed        = errors.New("movie search failed")
	ErrEmptyTitle                  = errors.New("title cannot be empty")
	ErrPricesNotSet                = errors.New("ticket prices are not configured")
	ErrReservationRetriesExhausted = errors.New("could not issue a unique reservation code")
)
