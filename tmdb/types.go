package tmdb

import (
	"strconv"
	"strings"
)

// Genre is a movie or TV genre
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Video is a trailer, teaser or clip attached to a movie or show
type Video struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Site        string `json:"site"`
	Type        string `json:"type"`
	Size        int    `json:"size"`
	Official    bool   `json:"official"`
	PublishedAt string `json:"published_at,omitempty"`
}

// VideoList is the appended videos block of a detail response
type VideoList struct {
	Results []Video `json:"results"`
}

// CastMember is a single cast entry
type CastMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	CreditID    string `json:"credit_id"`
	Order       int    `json:"order"`
	ProfilePath string `json:"profile_path,omitempty"`
}

// CrewMember is a single crew entry
type CrewMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Job         string `json:"job"`
	Department  string `json:"department"`
	CreditID    string `json:"credit_id"`
	ProfilePath string `json:"profile_path,omitempty"`
}

// Credits wraps cast and crew
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// Movie represents a TMDB movie, either a list entry or a detail response
type Movie struct {
	ID               int        `json:"id"`
	IMDbID           string     `json:"imdb_id,omitempty"`
	Title            string     `json:"title"`
	OriginalTitle    string     `json:"original_title"`
	OriginalLanguage string     `json:"original_language"`
	Overview         string     `json:"overview"`
	Tagline          string     `json:"tagline,omitempty"`
	ReleaseDate      string     `json:"release_date"`
	Runtime          int        `json:"runtime,omitempty"`
	Status           string     `json:"status,omitempty"`
	Adult            bool       `json:"adult"`
	Popularity       float64    `json:"popularity"`
	VoteAverage      float64    `json:"vote_average"`
	VoteCount        int        `json:"vote_count"`
	GenreIDs         []int      `json:"genre_ids,omitempty"`
	Genres           []Genre    `json:"genres,omitempty"`
	PosterPath       string     `json:"poster_path,omitempty"`
	BackdropPath     string     `json:"backdrop_path,omitempty"`
	Budget           int64      `json:"budget,omitempty"`
	Revenue          int64      `json:"revenue,omitempty"`
	Videos           *VideoList `json:"videos,omitempty"`
	Credits          *Credits   `json:"credits,omitempty"`
}

// Year returns the release year, or 0 when unknown
func (m *Movie) Year() int {
	return yearOf(m.ReleaseDate)
}

// Show represents a TMDB TV show
type Show struct {
	ID               int        `json:"id"`
	Name             string     `json:"name"`
	OriginalName     string     `json:"original_name"`
	OriginalLanguage string     `json:"original_language"`
	Overview         string     `json:"overview"`
	Tagline          string     `json:"tagline,omitempty"`
	FirstAirDate     string     `json:"first_air_date"`
	LastAirDate      string     `json:"last_air_date,omitempty"`
	Status           string     `json:"status,omitempty"`
	NumberOfSeasons  int        `json:"number_of_seasons,omitempty"`
	NumberOfEpisodes int        `json:"number_of_episodes,omitempty"`
	OriginCountry    []string   `json:"origin_country,omitempty"`
	Popularity       float64    `json:"popularity"`
	VoteAverage      float64    `json:"vote_average"`
	VoteCount        int        `json:"vote_count"`
	GenreIDs         []int      `json:"genre_ids,omitempty"`
	Genres           []Genre    `json:"genres,omitempty"`
	PosterPath       string     `json:"poster_path,omitempty"`
	BackdropPath     string     `json:"backdrop_path,omitempty"`
	Seasons          []Season   `json:"seasons,omitempty"`
	Videos           *VideoList `json:"videos,omitempty"`
	Credits          *Credits   `json:"credits,omitempty"`
}

// Year returns the first air year, or 0 when unknown
func (s *Show) Year() int {
	return yearOf(s.FirstAirDate)
}

// Season represents one season of a show
type Season struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Overview     string    `json:"overview"`
	AirDate      string    `json:"air_date"`
	SeasonNumber int       `json:"season_number"`
	EpisodeCount int       `json:"episode_count,omitempty"`
	PosterPath   string    `json:"poster_path,omitempty"`
	VoteAverage  float64   `json:"vote_average,omitempty"`
	Episodes     []Episode `json:"episodes,omitempty"`
}

// Episode represents one episode of a show
type Episode struct {
	ID             int          `json:"id"`
	Name           string       `json:"name"`
	Overview       string       `json:"overview"`
	AirDate        string       `json:"air_date"`
	SeasonNumber   int          `json:"season_number"`
	EpisodeNumber  int          `json:"episode_number"`
	Runtime        int          `json:"runtime,omitempty"`
	ProductionCode string       `json:"production_code,omitempty"`
	StillPath      string       `json:"still_path,omitempty"`
	VoteAverage    float64      `json:"vote_average"`
	VoteCount      int          `json:"vote_count"`
	GuestStars     []CastMember `json:"guest_stars,omitempty"`
	Crew           []CrewMember `json:"crew,omitempty"`
}

// Person represents a cast or crew member
type Person struct {
	ID                 int      `json:"id"`
	IMDbID             string   `json:"imdb_id,omitempty"`
	Name               string   `json:"name"`
	AlsoKnownAs        []string `json:"also_known_as,omitempty"`
	Biography          string   `json:"biography,omitempty"`
	Birthday           string   `json:"birthday,omitempty"`
	Deathday           string   `json:"deathday,omitempty"`
	PlaceOfBirth       string   `json:"place_of_birth,omitempty"`
	Gender             int      `json:"gender"`
	KnownForDepartment string   `json:"known_for_department"`
	Popularity         float64  `json:"popularity"`
	ProfilePath        string   `json:"profile_path,omitempty"`
	Homepage           string   `json:"homepage,omitempty"`
}

// Configuration is the subset of /configuration used for connection checks
type Configuration struct {
	Images struct {
		SecureBaseURL string   `json:"secure_base_url"`
		PosterSizes   []string `json:"poster_sizes"`
	} `json:"images"`
	ChangeKeys []string `json:"change_keys"`
}

// yearOf extracts the year from a YYYY-MM-DD date
func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}

// GenreNames returns the genre names in order
func GenreNames(genres []Genre) []string {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, strings.TrimSpace(g.Name))
	}
	return names
}
