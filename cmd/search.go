package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/reelscope/filter"
)

// searchCmd groups the search lookups
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search movies, TV shows and people",
}

func init() {
	searchCmd.AddCommand(
		&cobra.Command{
			Use:   "movie QUERY...",
			Short: "Search movies by title",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := newRenderer(cmd)
				if err != nil {
					return err
				}
				movies, found, err := tmdbClient.Search.Movie(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				return renderList(r, movies, found, filter.FromMovie, movieLine)
			},
		},
		&cobra.Command{
			Use:   "tv QUERY...",
			Short: "Search TV shows by name",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := newRenderer(cmd)
				if err != nil {
					return err
				}
				shows, found, err := tmdbClient.Search.Show(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				return renderList(r, shows, found, filter.FromShow, showLine)
			},
		},
		&cobra.Command{
			Use:   "person QUERY...",
			Short: "Search people by name",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := newRenderer(cmd)
				if err != nil {
					return err
				}
				people, found, err := tmdbClient.Search.Person(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				return renderList(r, people, found, filter.FromPerson, personLine)
			},
		},
	)
}
