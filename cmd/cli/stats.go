package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/mauv0809/handball-stats/internal/stats"
	"github.com/spf13/cobra"
)

var (
	statsSort     string
	bestCriterion string
	statsJSON     bool
)

func init() {
	statsPlayersCmd.Flags().StringVar(&statsSort, "sort", "goals", "Sort by goals, assists, saves, efficiency or playTime")
	statsBestTeamCmd.Flags().StringVar(&bestCriterion, "criterion", string(stats.CriterionBalanced), "balanced, offensive, defensive or efficient")
	statsCmd.PersistentFlags().BoolVar(&statsJSON, "json", false, "Print the raw JSON")

	statsCmd.AddCommand(statsPlayersCmd)
	statsCmd.AddCommand(statsSummaryCmd)
	statsCmd.AddCommand(statsBestTeamCmd)
	statsCmd.AddCommand(statsCompareCmd)
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Team and player statistics",
}

var statsPlayersCmd = &cobra.Command{
	Use:   "players",
	Short: "Per-player totals and averages",
	RunE: func(cmd *cobra.Command, args []string) error {
		rollups, err := apiClient().PlayerStats(cmd.Context(), statsSort)
		if err != nil {
			return err
		}
		if statsJSON {
			return printJSON(rollups)
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "#\tNAME\tPOS\tMP\tG\tA\tS\tTO\tEFF\tG/MP")
		for _, r := range rollups {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%.1f\n", r.Number, r.Name, r.Position, r.Matches,
				r.Stats.Goals, r.Stats.Assists, r.Stats.Saves, r.Stats.Turnovers, stats.Efficiency(r), r.AverageStats.Goals)
		}
		return w.Flush()
	},
}

var statsSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Dashboard totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := apiClient().Summary(cmd.Context())
		if err != nil {
			return err
		}
		if statsJSON {
			return printJSON(summary)
		}
		fmt.Printf("Matches: %d\nPlayers: %d\nGoals:   %d\n", summary.TotalMatches, summary.ActivePlayers, summary.TotalGoals)
		return nil
	},
}

var statsBestTeamCmd = &cobra.Command{
	Use:   "best-team",
	Short: "Suggest the best starting five",
	RunE: func(cmd *cobra.Command, args []string) error {
		team, err := apiClient().BestTeam(cmd.Context(), bestCriterion)
		if err != nil {
			return err
		}
		if statsJSON {
			return printJSON(team)
		}
		fmt.Printf("Best team (%s)\n", team.Criterion)
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, p := range team.Players {
			fmt.Fprintf(w, "%s\t#%d %s\t%.1f\n", p.Position, p.Number, p.Name, p.Score)
		}
		return w.Flush()
	},
}

var statsCompareCmd = &cobra.Command{
	Use:   "compare <player1> <player2>",
	Short: "Compare two players metric by metric",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id1, err := parseID(args[0])
		if err != nil {
			return err
		}
		id2, err := parseID(args[1])
		if err != nil {
			return err
		}
		cmp, err := apiClient().Compare(cmd.Context(), id1, id2)
		if err != nil {
			return err
		}
		if statsJSON {
			return printJSON(cmp)
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "METRIC\t%s\t%s\tSHARE\tDIFF\n", cmp.Player1.Name, cmp.Player2.Name)
		for _, m := range cmp.Metrics {
			fmt.Fprintf(w, "%s\t%d\t%d\t%d%%\t%s %s\n", m.Metric, m.Total1, m.Total2, m.Share, m.Label, indicatorMark(m.Indicator))
		}
		return w.Flush()
	},
}

func indicatorMark(i stats.Indicator) string {
	switch i {
	case stats.Better:
		return "▲"
	case stats.Worse:
		return "▼"
	}
	return "="
}
