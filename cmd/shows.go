package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/s0up4200/reelscope/filter"
	"github.com/s0up4200/reelscope/tmdb"
)

// showsCmd groups the TV lookups
var showsCmd = &cobra.Command{
	Use:     "shows",
	Aliases: []string{"tv"},
	Short:   "Browse and look up TV shows",
}

type showListFunc = func(ctx context.Context) ([]tmdb.Show, bool, error)

func init() {
	showsCmd.AddCommand(
		showListCmd("top-rated", "List top rated shows", func(c *tmdb.Client) showListFunc { return c.Shows.TopRated }),
		showListCmd("popular", "List popular shows", func(c *tmdb.Client) showListFunc { return c.Shows.Popular }),
		showListCmd("airing-today", "List shows airing today", func(c *tmdb.Client) showListFunc { return c.Shows.AiringToday }),
		&cobra.Command{
			Use:   "get ID",
			Short: "Show TV show details with videos and credits",
			Args:  cobra.ExactArgs(1),
			RunE:  runShowGet,
		},
		&cobra.Command{
			Use:   "similar ID",
			Short: "List shows similar to a show",
			Args:  cobra.ExactArgs(1),
			RunE:  runShowSimilar,
		},
		&cobra.Command{
			Use:   "season SHOW_ID SEASON",
			Short: "Show a season with its episodes",
			Args:  cobra.ExactArgs(2),
			RunE:  runShowSeason,
		},
		&cobra.Command{
			Use:   "episode SHOW_ID SEASON EPISODE",
			Short: "Show a single episode",
			Args:  cobra.ExactArgs(3),
			RunE:  runShowEpisode,
		},
	)
}

// showListCmd builds a command for an argument-less show list
func showListCmd(use, short string, pick func(*tmdb.Client) showListFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			shows, found, err := pick(tmdbClient)(cmd.Context())
			if err != nil {
				return err
			}
			return renderList(r, shows, found, filter.FromShow, showLine)
		},
	}
}

func runShowGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0], "show ID")
	if err != nil {
		return err
	}
	r, err := newRenderer(cmd)
	if err != nil {
		return err
	}

	show, found, err := tmdbClient.Shows.FindByID(cmd.Context(), id)
	if err != nil {
		return err
	}
	return renderDetail(r, show, found, writeShow)
}

func runShowSimilar(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0], "show ID")
	if err != nil {
		return err
	}
	r, err := newRenderer(cmd)
	if err != nil {
		return err
	}

	shows, found, err := tmdbClient.Shows.FindSimilarByID(cmd.Context(), id)
	if err != nil {
		return err
	}
	return renderList(r, shows, found, filter.FromShow, showLine)
}

func runShowSeason(cmd *cobra.Command, args []string) error {
	showID, err := parseID(args[0], "show ID")
	if err != nil {
		return err
	}
	season, err := parseID(args[1], "season number")
	if err != nil {
		return err
	}
	r, err := newRenderer(cmd)
	if err != nil {
		return err
	}

	detail, found, err := tmdbClient.Shows.GetSeasonDetail(cmd.Context(), showID, season)
	if err != nil {
		return err
	}
	return renderDetail(r, detail, found, writeSeason)
}

func runShowEpisode(cmd *cobra.Command, args []string) error {
	showID, err := parseID(args[0], "show ID")
	if err != nil {
		return err
	}
	season, err := parseID(args[1], "season number")
	if err != nil {
		return err
	}
	episode, err := parseID(args[2], "episode number")
	if err != nil {
		return err
	}
	r, err := newRenderer(cmd)
	if err != nil {
		return err
	}

	detail, found, err := tmdbClient.Shows.GetEpisodeDetail(cmd.Context(), showID, season, episode)
	if err != nil {
		return err
	}
	return renderDetail(r, detail, found, writeEpisode)
}
