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
	playerPosition string
	playerNumber   int
	playerCategory string
)

func init() {
	playersAddCmd.Flags().StringVar(&playerPosition, "position", "", "Playing position (Portero, Lateral, Central, Pivote, Extremo)")
	playersAddCmd.Flags().IntVar(&playerNumber, "number", 0, "Shirt number")
	playersAddCmd.Flags().StringVar(&playerCategory, "category", string(handball.CategoryFemale), "MASCULINO or FEMENINO")
	playersAddCmd.MarkFlagRequired("position")
	playersAddCmd.MarkFlagRequired("number")

	playersCmd.AddCommand(playersListCmd)
	playersCmd.AddCommand(playersAddCmd)
	rootCmd.AddCommand(playersCmd)
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "Manage the roster",
}

var playersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every player",
	RunE: func(cmd *cobra.Command, args []string) error {
		players, err := apiClient().ListPlayers(cmd.Context())
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\t#\tNAME\tPOSITION\tCATEGORY")
		for _, p := range players {
			fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\n", p.ID, p.Number, p.Name, p.Position, p.Category)
		}
		return w.Flush()
	},
}

var playersAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a player to the roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		player, err := apiClient().AddPlayer(cmd.Context(), client.AddPlayerRequest{
			Name:     args[0],
			Position: playerPosition,
			Number:   playerNumber,
			Category: handball.Category(playerCategory),
		})
		if err != nil {
			return err
		}
		fmt.Printf("Added #%d %s (id %d)\n", player.Number, player.Name, player.ID)
		return nil
	},
}
