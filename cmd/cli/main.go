package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/handball-stats/internal/client"
	"github.com/spf13/cobra"
)

var (
	host    string
	verbose bool
	dryRun  bool
)

var rootCmd = &cobra.Command{
	Use:   "handball",
	Short: "A CLI to interact with the handball stats server",
	Long: `A command-line interface for managing the roster, setting up matches,
tracking a match live and reading the team statistics.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "The host address of the server")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every request")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Ask the server not to send notifications or publish events")
}

func apiClient() *client.APIClient {
	c := client.NewClient(host)
	c.DryRun = dryRun
	return c
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'\n", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
