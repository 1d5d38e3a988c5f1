package filter

import (
	"time"

	"github.com/s0up4200/reelscope/tmdb"
)

// Kind identifies the TMDB entity an Item was built from
type Kind string

const (
	KindMovie  Kind = "movie"
	KindShow   Kind = "tv"
	KindPerson Kind = "person"
)

// Item is the flat view of a TMDB result that filter expressions see
type Item struct {
	Kind        Kind
	ID          int
	Title       string
	Year        int
	Released    time.Time
	Overview    string
	Language    string
	Popularity  float64
	VoteAverage float64
	VoteCount   int
	GenreIDs    []int
	Department  string
	Adult       bool
}

// FromMovie builds an Item from a movie
func FromMovie(m tmdb.Movie) Item {
	return Item{
		Kind:        KindMovie,
		ID:          m.ID,
		Title:       m.Title,
		Year:        m.Year(),
		Released:    parseDate(m.ReleaseDate),
		Overview:    m.Overview,
		Language:    m.OriginalLanguage,
		Popularity:  m.Popularity,
		VoteAverage: m.VoteAverage,
		VoteCount:   m.VoteCount,
		GenreIDs:    genreIDs(m.GenreIDs, m.Genres),
		Adult:       m.Adult,
	}
}

// FromShow builds an Item from a TV show
func FromShow(s tmdb.Show) Item {
	return Item{
		Kind:        KindShow,
		ID:          s.ID,
		Title:       s.Name,
		Year:        s.Year(),
		Released:    parseDate(s.FirstAirDate),
		Overview:    s.Overview,
		Language:    s.OriginalLanguage,
		Popularity:  s.Popularity,
		VoteAverage: s.VoteAverage,
		VoteCount:   s.VoteCount,
		GenreIDs:    genreIDs(s.GenreIDs, s.Genres),
	}
}

// FromPerson builds an Item from a person
func FromPerson(p tmdb.Person) Item {
	return Item{
		Kind:       KindPerson,
		ID:         p.ID,
		Title:      p.Name,
		Released:   parseDate(p.Birthday),
		Overview:   p.Biography,
		Popularity: p.Popularity,
		Department: p.KnownForDepartment,
	}
}

// genreIDs prefers list-style genre_ids and falls back to detail genres
func genreIDs(ids []int, genres []tmdb.Genre) []int {
	if len(ids) > 0 {
		return ids
	}
	out := make([]int, 0, len(genres))
	for _, g := range genres {
		out = append(out, g.ID)
	}
	return out
}

func parseDate(date string) time.Time {
	t, _ := time.Parse("2006-01-02", date)
	return t
}
