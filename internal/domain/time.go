package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Time is a wall-clock start time with minute precision. It carries no date
// and no zone: two Times with the same hour and minute are the same schedule
// slot.
type Time struct {
	Hour   int
	Minute int
}

func NewTime(hour, minute int) (Time, error) {
	if hour < 0 || hour > 23 {
		return Time{}, fmt.Errorf("hour must be between 0 and 23, got %d", hour)
	}
	if minute < 0 || minute > 59 {
		return Time{}, fmt.Errorf("minute must be between 0 and 59, got %d", minute)
	}

	return Time{Hour: hour, Minute: minute}, nil
}

// Minutes converts the time to minutes since midnight, the basis of the
// total order.
func (t Time) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t Time) Compare(other Time) int {
	switch {
	case t.Minutes() < other.Minutes():
		return -1
	case t.Minutes() > other.Minutes():
		return 1
	default:
		return 0
	}
}

func (t Time) Before(other Time) bool {
	return t.Minutes() < other.Minutes()
}

func (t Time) Equal(other Time) bool {
	return t.Minutes() == other.Minutes()
}

// Key is the canonical 24-hour form used in inventory keys and snapshots.
// The 12-hour display form is ambiguous for hours 0 and 12 and must never
// reach a map key.
func (t Time) Key() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// String renders the customer-facing 12-hour clock form, e.g. "07:30pm".
// Hour 0 renders as 12am and hour 12 as 12pm.
func (t Time) String() string {
	h := t.Hour % 12
	if h == 0 {
		h = 12
	}

	period := "am"
	if t.Hour >= 12 {
		period = "pm"
	}

	return fmt.Sprintf("%02d:%02d%s", h, t.Minute, period)
}

func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.Key()), nil
}

func (t *Time) UnmarshalText(data []byte) error {
	s := string(data)

	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return fmt.Errorf("malformed time %q, want HH:MM", s)
	}

	hour, err := strconv.Atoi(hh)
	if err != nil {
		return fmt.Errorf("malformed time %q: %w", s, err)
	}

	minute, err := strconv.Atoi(mm)
	if err != nil {
		return fmt.Errorf("malformed time %q: %w", s, err)
	}

	parsed, err := NewTime(hour, minute)
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}
