package main

import (
	"fmt"

	"github.com/mauv0809/handball-stats/internal/handball"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(themeCmd)
}

var themeCmd = &cobra.Command{
	Use:       "theme [light|dark]",
	Short:     "Show or set the dashboard theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(handball.ThemeLight), string(handball.ThemeDark)},
	RunE: func(cmd *cobra.Command, args []string) error {
		api := apiClient()
		if len(args) == 1 {
			if err := api.SetTheme(cmd.Context(), handball.Theme(args[0])); err != nil {
				return err
			}
		}
		theme, err := api.Theme(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(theme)
		return nil
	},
}
