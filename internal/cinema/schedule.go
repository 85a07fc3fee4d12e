package cinema

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cinebox/cinema-box-office/internal/domain"
)

// Schedule is the cinema's billboard: every title on it, the screening room
// assigned to each title (at most one), and each title's set of start times.
// Mutations cascade into the shared Inventory so the two can never drift
// apart. The UI addresses titles by their 1-based billboard position; new
// titles go to the front, and removals shift later positions down.
type Schedule struct {
	movies     map[string]*domain.Movie
	startTimes map[string][]domain.Time // sorted ascending, no duplicates
	rooms      map[string]domain.Room
	titles     []string
	inventory  *Inventory
}

func NewSchedule(inventory *Inventory) *Schedule {
	return &Schedule{
		movies:     map[string]*domain.Movie{},
		startTimes: map[string][]domain.Time{},
		rooms:      map[string]domain.Room{},
		inventory:  inventory,
	}
}

func (s *Schedule) Len() int {
	return len(s.titles)
}

func (s *Schedule) Titles() []string {
	return slices.Clone(s.titles)
}

func (s *Schedule) TitleByIndex(index int) (string, error) {
	i := index - 1
	if i < 0 || i >= len(s.titles) {
		return "", fmt.Errorf("%w: movie %d", domain.ErrInvalidIndex, index)
	}

	return s.titles[i], nil
}

func (s *Schedule) MovieByIndex(index int) (*domain.Movie, error) {
	title, err := s.TitleByIndex(index)
	if err != nil {
		return nil, err
	}

	return s.movies[title], nil
}

// AddMovie registers a resolved movie under its canonical title.
func (s *Schedule) AddMovie(movie *domain.Movie) error {
	title := movie.Title

	if _, ok := s.movies[title]; ok {
		return fmt.Errorf("%w: movie %q", domain.ErrAlreadyExists, title)
	}

	s.movies[title] = movie
	s.startTimes[title] = []domain.Time{}
	s.titles = append([]string{title}, s.titles...)

	return nil
}

// AddTime records a new start time for the indexed title. When the title has
// a room, the inventory for the new screening is materialized immediately.
// Without a room the time is recorded but no seats exist: the billboard shows
// it while the sale channels see no stock, until a room is assigned.
func (s *Schedule) AddTime(index, hour, minute int) (domain.Time, error) {
	title, err := s.TitleByIndex(index)
	if err != nil {
		return domain.Time{}, err
	}

	t, err := domain.NewTime(hour, minute)
	if err != nil {
		return domain.Time{}, err
	}

	for _, existing := range s.startTimes[title] {
		if existing.Equal(t) {
			return domain.Time{}, fmt.Errorf("%w: start time %s for %q", domain.ErrAlreadyExists, t, title)
		}
	}

	times := append(s.startTimes[title], t)
	slices.SortFunc(times, domain.Time.Compare)
	s.startTimes[title] = times

	if room, ok := s.rooms[title]; ok {
		s.inventory.Materialize(title, t, room)
	}

	return t, nil
}

// AddRoom assigns the room to the indexed title and materializes inventory
// for every start time the title already has. Assigning over an existing room
// replaces it: the old room's screenings are torn down first so the inventory
// never holds seats of a room the title no longer plays in. The admin menu
// pre-checks HasRoomByIndex and refuses the replacement path.
func (s *Schedule) AddRoom(index int, room domain.Room) error {
	title, err := s.TitleByIndex(index)
	if err != nil {
		return err
	}

	if prev, ok := s.rooms[title]; ok {
		if prev == room {
			return nil
		}
		for _, t := range s.startTimes[title] {
			s.inventory.Teardown(title, t, prev)
		}
	}

	s.rooms[title] = room
	for _, t := range s.startTimes[title] {
		s.inventory.Materialize(title, t, room)
	}

	return nil
}

// RemoveTime drops the start time from the indexed title and tears down the
// screening's inventory. A title without a room has no inventory to tear
// down.
func (s *Schedule) RemoveTime(index int, t domain.Time) error {
	title, err := s.TitleByIndex(index)
	if err != nil {
		return err
	}

	times := s.startTimes[title]
	i := slices.IndexFunc(times, t.Equal)
	if i < 0 {
		return fmt.Errorf("%w: start time %s for %q", domain.ErrNotFound, t, title)
	}

	s.startTimes[title] = slices.Delete(times, i, i+1)

	if room, ok := s.rooms[title]; ok {
		s.inventory.Teardown(title, t, room)
	}

	return nil
}

// CascadeFailure is one dependent removal that a cascade could not complete.
type CascadeFailure struct {
	Time domain.Time
	Err  error
}

// CascadeResult reports which dependent removals failed during a cascading
// delete. The cascade keeps going past failures; the caller decides what to
// surface.
type CascadeResult struct {
	Failures []CascadeFailure
}

func (c CascadeResult) Failed() bool {
	return len(c.Failures) > 0
}

// RemoveRoom clears the title's room assignment. Every start time is removed
// first so all screening inventory is torn down with the room; the title
// lands back at no room, no times.
func (s *Schedule) RemoveRoom(index int) (CascadeResult, error) {
	title, err := s.TitleByIndex(index)
	if err != nil {
		return CascadeResult{}, err
	}

	if _, ok := s.rooms[title]; !ok {
		return CascadeResult{}, fmt.Errorf("%w: %q has no screening room assigned", domain.ErrNotFound, title)
	}

	var result CascadeResult
	for _, t := range slices.Clone(s.startTimes[title]) {
		if err := s.RemoveTime(index, t); err != nil {
			result.Failures = append(result.Failures, CascadeFailure{Time: t, Err: err})
		}
	}

	delete(s.rooms, title)

	return result, nil
}

// RemoveMovie drops the title from the billboard after cascading its room and
// start times away. A title that never got a room has nothing to cascade.
func (s *Schedule) RemoveMovie(index int) (CascadeResult, error) {
	title, err := s.TitleByIndex(index)
	if err != nil {
		return CascadeResult{}, err
	}

	var result CascadeResult
	if _, ok := s.rooms[title]; ok {
		result, _ = s.RemoveRoom(index)
	}

	delete(s.startTimes, title)
	delete(s.movies, title)
	s.titles = slices.Delete(s.titles, index-1, index)

	return result, nil
}

func (s *Schedule) RoomByTitle(title string) (domain.Room, error) {
	room, ok := s.rooms[title]
	if !ok {
		return 0, fmt.Errorf("%w: %q has no screening room assigned", domain.ErrNotFound, title)
	}

	return room, nil
}

func (s *Schedule) HasRoomByIndex(index int) (bool, error) {
	title, err := s.TitleByIndex(index)
	if err != nil {
		return false, err
	}

	_, ok := s.rooms[title]

	return ok, nil
}

func (s *Schedule) HasTimesByIndex(index int) (bool, error) {
	title, err := s.TitleByIndex(index)
	if err != nil {
		return false, err
	}

	return len(s.startTimes[title]) > 0, nil
}

func (s *Schedule) TimesByTitle(title string) ([]domain.Time, error) {
	times, ok := s.startTimes[title]
	if !ok {
		return nil, fmt.Errorf("%w: movie %q", domain.ErrNotFound, title)
	}

	return slices.Clone(times), nil
}

func (s *Schedule) TimeByIndex(title string, index int) (domain.Time, error) {
	times, ok := s.startTimes[title]
	if !ok {
		return domain.Time{}, fmt.Errorf("%w: movie %q", domain.ErrNotFound, title)
	}

	i := index - 1
	if i < 0 || i >= len(times) {
		return domain.Time{}, fmt.Errorf("%w: start time %d", domain.ErrInvalidIndex, index)
	}

	return times[i], nil
}

// IsAvailableForSale reports whether the indexed title can be sold through
// either channel: a room must be assigned and at least one start time must
// exist.
func (s *Schedule) IsAvailableForSale(index int) (bool, error) {
	title, err := s.TitleByIndex(index)
	if err != nil {
		return false, err
	}

	if _, ok := s.rooms[title]; !ok {
		return false, nil
	}

	return len(s.startTimes[title]) > 0, nil
}

// TitlesTable renders the numbered billboard the menus use for index-based
// selection.
func (s *Schedule) TitlesTable() (string, error) {
	if len(s.titles) == 0 {
		return "", domain.ErrEmptyCatalog
	}

	width := len("TITLE")
	for _, title := range s.titles {
		if len(title) > width {
			width = len(title)
		}
	}

	var b strings.Builder

	b.WriteString("╔════╦" + strings.Repeat("═", width+2) + "╗\n")
	b.WriteString(fmt.Sprintf("║ ID ║ %-*s ║\n", width, "TITLE"))
	b.WriteString("╠════╬" + strings.Repeat("═", width+2) + "╣\n")

	for i, title := range s.titles {
		b.WriteString(fmt.Sprintf("║ %2d ║ %-*s ║\n", i+1, width, title))
	}

	b.WriteString("╚════╩" + strings.Repeat("═", width+2) + "╝")

	return b.String(), nil
}

// ShowtimesList renders a title's start times as the 1-based list the menus
// select from.
func (s *Schedule) ShowtimesList(title string) (string, error) {
	times, ok := s.startTimes[title]
	if !ok {
		return "", fmt.Errorf("%w: movie %q", domain.ErrNotFound, title)
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("Showtimes for %s:\n", title))
	for i, t := range times {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, t))
	}

	return b.String(), nil
}

// String renders the full public billboard.
func (s *Schedule) String() string {
	if len(s.titles) == 0 {
		return "Coming soon..."
	}

	var b strings.Builder

	b.WriteString("╔═══════════════════════╗\n")
	b.WriteString("║       SHOWTIMES       ║\n")
	b.WriteString("╚═══════════════════════╝\n")

	for _, title := range s.titles {
		b.WriteString(fmt.Sprintf("\nTitle: %s\n", title))

		times := s.startTimes[title]
		if len(times) == 0 {
			b.WriteString("No showtimes available.\n")
		} else {
			b.WriteString("Showtimes:\n")
			for _, t := range times {
				b.WriteString(fmt.Sprintf("   • %s\n", t))
			}
		}

		if room, ok := s.rooms[title]; ok {
			b.WriteString(fmt.Sprintf("Screen: %d\n", room.ID()))
		} else {
			b.WriteString("Screening Room: Not assigned\n")
		}

		b.WriteString(fmt.Sprintf("Runtime: %s\n", s.movies[title].Runtime))
	}

	return b.String()
}

func (s *Schedule) export(snap *domain.Snapshot) {
	snap.Titles = slices.Clone(s.titles)

	for title, movie := range s.movies {
		snap.Movies[title] = movie
	}
	for title, room := range s.rooms {
		snap.Rooms[title] = room
	}
	for title, times := range s.startTimes {
		snap.StartTimes[title] = slices.Clone(times)
	}
}

func (s *Schedule) restore(snap *domain.Snapshot) {
	s.titles = slices.Clone(snap.Titles)

	for title, movie := range snap.Movies {
		s.movies[title] = movie
	}
	for title, room := range snap.Rooms {
		s.rooms[title] = room
	}
	for _, title := range s.titles {
		times := slices.Clone(snap.StartTimes[title])
		slices.SortFunc(times, domain.Time.Compare)
		if times == nil {
			times = []domain.Time{}
		}
		s.startTimes[title] = times
	}
}
