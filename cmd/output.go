package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/reelscope/filter"
	"github.com/s0up4200/reelscope/tmdb"
)

const noResults = "No results found."

// renderer prints lookup results in the configured format
type renderer struct {
	out    io.Writer
	format string
	filter filter.CompiledFilter
}

func newRenderer(cmd *cobra.Command) (*renderer, error) {
	r := &renderer{
		out:    cmd.OutOrStdout(),
		format: cfg.Output.Format,
	}

	if expr := strings.TrimSpace(cfg.Output.Filter); expr != "" {
		f, err := filter.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid filter expression: %w", err)
		}
		r.filter = f
	}

	return r, nil
}

func (r *renderer) json(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderList prints a list result. An absent result is reported, not treated as an error.
func renderList[T any](r *renderer, items []T, found bool, view func(T) filter.Item, line func(T) string) error {
	if !found {
		fmt.Fprintln(r.out, noResults)
		return nil
	}

	if r.filter != nil {
		items = filter.Apply[T](r.filter, items, view)
	}

	if r.format == "json" {
		if items == nil {
			items = []T{}
		}
		return r.json(items)
	}

	if len(items) == 0 {
		fmt.Fprintln(r.out, noResults)
		return nil
	}

	fmt.Fprintf(r.out, "\nFound %d results:\n", len(items))
	fmt.Fprintln(r.out, strings.Repeat("-", 80))
	for _, item := range items {
		fmt.Fprintf(r.out, "• %s\n", line(item))
	}
	return nil
}

// renderDetail prints a single entity
func renderDetail[T any](r *renderer, v T, found bool, write func(io.Writer, T)) error {
	if !found {
		fmt.Fprintln(r.out, noResults)
		return nil
	}

	if r.format == "json" {
		return r.json(v)
	}

	write(r.out, v)
	return nil
}

func movieLine(m tmdb.Movie) string {
	return fmt.Sprintf("%s%s ★ %.1f [ID: %d]", m.Title, yearSuffix(m.Year()), m.VoteAverage, m.ID)
}

func showLine(s tmdb.Show) string {
	return fmt.Sprintf("%s%s ★ %.1f [ID: %d]", s.Name, yearSuffix(s.Year()), s.VoteAverage, s.ID)
}

func personLine(p tmdb.Person) string {
	if p.KnownForDepartment == "" {
		return fmt.Sprintf("%s [ID: %d]", p.Name, p.ID)
	}
	return fmt.Sprintf("%s - %s [ID: %d]", p.Name, p.KnownForDepartment, p.ID)
}

func yearSuffix(year int) string {
	if year == 0 {
		return ""
	}
	return " (" + strconv.Itoa(year) + ")"
}

func writeMovie(w io.Writer, m tmdb.Movie) {
	fmt.Fprintf(w, "%s%s\n", m.Title, yearSuffix(m.Year()))
	if m.Tagline != "" {
		fmt.Fprintf(w, "  %s\n", m.Tagline)
	}
	fmt.Fprintf(w, "  Rating: %.1f (%d votes)\n", m.VoteAverage, m.VoteCount)
	if m.Runtime > 0 {
		fmt.Fprintf(w, "  Runtime: %d min\n", m.Runtime)
	}
	if len(m.Genres) > 0 {
		fmt.Fprintf(w, "  Genres: %s\n", strings.Join(tmdb.GenreNames(m.Genres), ", "))
	}
	if m.Overview != "" {
		fmt.Fprintf(w, "\n%s\n", m.Overview)
	}
	writeCredits(w, m.Credits)
	writeVideos(w, m.Videos)
}

func writeShow(w io.Writer, s tmdb.Show) {
	fmt.Fprintf(w, "%s%s\n", s.Name, yearSuffix(s.Year()))
	fmt.Fprintf(w, "  Rating: %.1f (%d votes)\n", s.VoteAverage, s.VoteCount)
	if s.Status != "" {
		fmt.Fprintf(w, "  Status: %s\n", s.Status)
	}
	if s.NumberOfSeasons > 0 {
		fmt.Fprintf(w, "  Seasons: %d, Episodes: %d\n", s.NumberOfSeasons, s.NumberOfEpisodes)
	}
	if len(s.Genres) > 0 {
		fmt.Fprintf(w, "  Genres: %s\n", strings.Join(tmdb.GenreNames(s.Genres), ", "))
	}
	if s.Overview != "" {
		fmt.Fprintf(w, "\n%s\n", s.Overview)
	}
	writeCredits(w, s.Credits)
	writeVideos(w, s.Videos)
}

func writeSeason(w io.Writer, s tmdb.Season) {
	fmt.Fprintf(w, "%s (season %d)\n", s.Name, s.SeasonNumber)
	if s.AirDate != "" {
		fmt.Fprintf(w, "  Aired: %s\n", s.AirDate)
	}
	if s.Overview != "" {
		fmt.Fprintf(w, "\n%s\n", s.Overview)
	}
	if len(s.Episodes) > 0 {
		fmt.Fprintln(w, "\nEpisodes:")
		for _, e := range s.Episodes {
			fmt.Fprintf(w, "  %2d. %s\n", e.EpisodeNumber, e.Name)
		}
	}
}

func writeEpisode(w io.Writer, e tmdb.Episode) {
	fmt.Fprintf(w, "S%02dE%02d %s\n", e.SeasonNumber, e.EpisodeNumber, e.Name)
	if e.AirDate != "" {
		fmt.Fprintf(w, "  Aired: %s\n", e.AirDate)
	}
	fmt.Fprintf(w, "  Rating: %.1f (%d votes)\n", e.VoteAverage, e.VoteCount)
	if e.Overview != "" {
		fmt.Fprintf(w, "\n%s\n", e.Overview)
	}
	if len(e.GuestStars) > 0 {
		fmt.Fprintln(w, "\nGuest stars:")
		for _, c := range e.GuestStars {
			fmt.Fprintf(w, "  • %s as %s\n", c.Name, c.Character)
		}
	}
}

func writePerson(w io.Writer, p tmdb.Person) {
	fmt.Fprintln(w, p.Name)
	if p.KnownForDepartment != "" {
		fmt.Fprintf(w, "  Known for: %s\n", p.KnownForDepartment)
	}
	if p.Birthday != "" {
		fmt.Fprintf(w, "  Born: %s", p.Birthday)
		if p.PlaceOfBirth != "" {
			fmt.Fprintf(w, " in %s", p.PlaceOfBirth)
		}
		fmt.Fprintln(w)
	}
	if p.Deathday != "" {
		fmt.Fprintf(w, "  Died: %s\n", p.Deathday)
	}
	if p.Biography != "" {
		fmt.Fprintf(w, "\n%s\n", p.Biography)
	}
}

// maxCredits limits the cast and crew lines of a detail view
const maxCredits = 10

func writeCredits(w io.Writer, c *tmdb.Credits) {
	if c == nil || len(c.Cast) == 0 {
		return
	}
	fmt.Fprintln(w, "\nCast:")
	for i, member := range c.Cast {
		if i == maxCredits {
			fmt.Fprintf(w, "  ... and %d more\n", len(c.Cast)-maxCredits)
			break
		}
		fmt.Fprintf(w, "  • %s as %s\n", member.Name, member.Character)
	}
}

func writeVideos(w io.Writer, v *tmdb.VideoList) {
	if v == nil {
		return
	}
	for _, video := range v.Results {
		if video.Site == "YouTube" && video.Type == "Trailer" {
			fmt.Fprintf(w, "\nTrailer: https://www.youtube.com/watch?v=%s\n", video.Key)
			return
		}
	}
}
