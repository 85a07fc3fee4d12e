package domain

import (
	"context"
	"fmt"
	"strings"
)

// Movie holds the descriptive fields fetched once from the metadata service.
// Title is the canonical title as the service resolves it, which may differ
// from what the operator typed.
type Movie struct {
	Title    string `json:"Title" validate:"required"`
	Year     string `json:"Year"`
	Rated    string `json:"Rated"`
	Released string `json:"Released"`
	Runtime  string `json:"Runtime"`
	Genre    string `json:"Genre"`
	Director string `json:"Director"`
	Writer   string `json:"Writer"`
	Actors   string `json:"Actors"`
	Plot     string `json:"Plot"`
	Language string `json:"Language"`
}

// Details renders the movie details card shown in the public menu.
func (m *Movie) Details() string {
	var b strings.Builder

	b.WriteString("╔════════════════════════════════════════╗\n")
	b.WriteString("║               MOVIE DETAILS            ║\n")
	b.WriteString("╚════════════════════════════════════════╝\n")
	b.WriteString(fmt.Sprintf("Title: %s\n", m.Title))
	b.WriteString(fmt.Sprintf("Year: %s\n", m.Year))
	b.WriteString(fmt.Sprintf("Rated: %s\n", m.Rated))
	b.WriteString(fmt.Sprintf("Released: %s\n", m.Released))
	b.WriteString(fmt.Sprintf("Runtime: %s\n", m.Runtime))
	b.WriteString(fmt.Sprintf("Genre: %s\n", m.Genre))
	b.WriteString(fmt.Sprintf("Director: %s\n", m.Director))
	b.WriteString(fmt.Sprintf("Writer: %s\n", m.Writer))
	b.WriteString(fmt.Sprintf("Actors: %s\n", m.Actors))
	b.WriteString(fmt.Sprintf("Plot: %s\n", m.Plot))
	b.WriteString(fmt.Sprintf("Language: %s\n", m.Language))

	return b.String()
}

// MetadataRepository looks descriptive movie data up in an external service.
// Lookup returns ErrNotFound when the service has no match, ErrEmptyTitle for
// a blank title, and ErrMetadataSearchFailed when the service is unreachable
// or answers garbage.
type MetadataRepository interface {
	Lookup(ctx context.Context, title string) (*Movie, error)
}
