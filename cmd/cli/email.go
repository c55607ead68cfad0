package main

import (
	"fmt"

	"github.com/mauv0809/handball-stats/internal/client"
	"github.com/spf13/cobra"
)

var (
	emailTo      string
	emailToName  string
	emailSubject string
	emailText    string
	emailHTML    string
)

func init() {
	emailCmd.Flags().StringVar(&emailTo, "to", "", "Comma separated recipient addresses")
	emailCmd.Flags().StringVar(&emailToName, "to-name", "", "Recipient display name")
	emailCmd.Flags().StringVar(&emailSubject, "subject", "", "Subject line")
	emailCmd.Flags().StringVar(&emailText, "text", "", "Plain text body")
	emailCmd.Flags().StringVar(&emailHTML, "html", "", "HTML body")
	emailCmd.MarkFlagRequired("to")
	emailCmd.MarkFlagRequired("subject")
	rootCmd.AddCommand(emailCmd)
}

var emailCmd = &cobra.Command{
	Use:   "email",
	Short: "Send one email to many recipients",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := apiClient().SendMassEmail(cmd.Context(), client.MassEmailRequest{
			ToEmails: emailTo,
			ToName:   emailToName,
			Subject:  emailSubject,
			Text:     emailText,
			HTML:     emailHTML,
		})
		if err != nil {
			if result != nil && result.Error != "" {
				return fmt.Errorf("email not sent: %s", result.Error)
			}
			return err
		}
		if dryRun {
			fmt.Println("Dry run: the server logged the email without sending it")
			return nil
		}
		fmt.Println("Email sent")
		return nil
	},
}
