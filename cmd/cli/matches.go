package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/mauv0809/handball-stats/internal/client"
	"github.com/mauv0809/handball-stats/internal/handball"
	"github.com/spf13/cobra"
)

var (
	matchOpponent string
	matchDate     string
	matchLocation string
	matchStarters []int64
	matchSubs     []int64
	skipLineup    bool
)

func init() {
	matchCreateCmd.Flags().StringVar(&matchOpponent, "opponent", "", "Opposing team")
	matchCreateCmd.Flags().StringVar(&matchDate, "date", "", "Match date (YYYY-MM-DD)")
	matchCreateCmd.Flags().StringVar(&matchLocation, "location", "", "Venue")
	matchCreateCmd.Flags().Int64SliceVar(&matchStarters, "starters", nil, "Player ids starting on court")
	matchCreateCmd.Flags().Int64SliceVar(&matchSubs, "subs", nil, "Player ids starting on the bench")
	matchCreateCmd.Flags().BoolVar(&skipLineup, "skip-lineup-check", false, "Submit without the 5 + 9 lineup check")
	for _, f := range []string{"opponent", "date", "location"} {
		matchCreateCmd.MarkFlagRequired(f)
	}

	matchCmd.AddCommand(matchCreateCmd)
	matchCmd.AddCommand(matchListCmd)
	matchCmd.AddCommand(matchShowCmd)
	rootCmd.AddCommand(matchCmd)
}

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Set up and inspect matches",
}

var matchCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a match with its call-up",
	RunE: func(cmd *cobra.Command, args []string) error {
		selected := make([]handball.Selection, 0, len(matchStarters)+len(matchSubs))
		for _, id := range matchStarters {
			selected = append(selected, handball.Selection{ID: id, Starter: true})
		}
		for _, id := range matchSubs {
			selected = append(selected, handball.Selection{ID: id})
		}
		if !skipLineup {
			if err := handball.ValidateLineup(selected); err != nil {
				return err
			}
		}

		req := client.CreateMatchRequest{Opponent: matchOpponent, Date: matchDate, Location: matchLocation}
		for _, s := range selected {
			req.SelectedPlayers = append(req.SelectedPlayers, client.SelectedPlayer{ID: s.ID, Starter: s.Starter})
		}
		match, err := apiClient().CreateMatch(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Printf("Created match %d vs %s. Track it with: handball live %d\n", match.ID, match.Opponent, match.ID)
		return nil
	},
}

var matchListCmd = &cobra.Command{
	Use:   "list",
	Short: "List matches, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := apiClient().MatchHistory(cmd.Context())
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tOPPONENT\tLOCATION")
		for _, r := range rows {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", r.ID, r.Date, r.Opponent, r.Location)
		}
		return w.Flush()
	},
}

var matchShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a match result and its player stats",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		summary, err := apiClient().MatchSummary(cmd.Context(), id)
		if err != nil {
			return err
		}
		m := summary.Match
		fmt.Printf("%s vs %s at %s\n", m.Date.Format("2006-01-02"), m.Opponent, m.Location)
		fmt.Printf("%s %d - %d\n\n", summary.Result, summary.TeamScore, m.OpponentScore)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "#\tNAME\tG\tA\tS\tTO\tYC\tRC\tMIN")
		for _, mp := range m.MatchPlayers {
			name, number := "?", 0
			if mp.Player != nil {
				name, number = mp.Player.Name, mp.Player.Number
			}
			fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n", number, name,
				mp.Goals, mp.Assists, mp.Saves, mp.Turnovers, mp.YellowCards, mp.RedCards, mp.PlayTime/60)
		}
		return w.Flush()
	},
}
