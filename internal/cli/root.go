// Package cli implements the showfinder command line.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/Belphemur/ShowFinder/internal/client"
	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/models"
)

// NewRootCmd builds the command tree. Running the root command alone serves the page.
func NewRootCmd(cfg *config.Config, c client.Client) *cobra.Command {
	serve := newServeCmd(cfg, c)

	root := &cobra.Command{
		Use:           "showfinder",
		Short:         "Search TV shows and list their episodes",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	root.AddCommand(serve, newSearchCmd(c), newEpisodesCmd(c))
	return root
}

func newSearchCmd(c client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Print the shows matching a term, one per line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shows, err := c.SearchShows(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return writeLines(cmd, lo.Map(shows, func(show models.Show, _ int) string {
				return fmt.Sprintf("%d\t%s\t%s", show.ID, show.Name, show.Image)
			}))
		},
	}
}

func newEpisodesCmd(c client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "episodes <show-id>",
		Short: "Print the episodes of a show, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			showID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid show id %q", args[0])
			}

			episodes, err := c.GetEpisodes(cmd.Context(), showID)
			if err != nil {
				return err
			}
			return writeLines(cmd, lo.Map(episodes, func(ep models.Episode, _ int) string {
				return fmt.Sprintf("%d\t%s (season %s, number %d)", ep.ID, ep.Name, ep.Season, ep.Number)
			}))
		},
	}
}

func writeLines(cmd *cobra.Command, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return err
		}
	}
	return nil
}
