package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/mathquest/app/internal/gamification"
	"github.com/mathquest/app/internal/session"
)

func levelOf(c *session.Controller) gamification.LevelSummary {
	s, _ := c.LevelSummary()
	return s
}

func newProfileCmd(e *env) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the signed-in player's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := e.resume(cmd.Context())
			if err != nil {
				return err
			}
			p, _ := c.Profile()
			if asJSON {
				enc := json.NewEncoder(e.out)
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Profile any                       `json:"profile"`
					Level   gamification.LevelSummary `json:"level"`
				}{p, levelOf(c)})
			}
			renderProfile(e.out, p)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func newRankingCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "ranking",
		Short: "Show the weekly ranking",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := e.resume(cmd.Context())
			if err != nil {
				return err
			}
			board, err := c.WeeklyRanking(cmd.Context())
			if err != nil {
				return userError(err)
			}
			renderRanking(e.out, board)
			return nil
		},
	}
}

func newCatalogCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List categories and available questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := e.controller()
			if err != nil {
				return err
			}
			renderCatalog(e.out, c.Catalog())
			return nil
		},
	}
}
