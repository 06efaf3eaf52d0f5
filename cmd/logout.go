package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"reolink-cli/internal/config"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Invalidate the saved camera session",
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		if err := api.Logout(); err != nil {
			// Best effort on the camera side; the saved token is
			// discarded either way.
			fmt.Printf("Warning: camera logout failed: %v\n", err)
		}

		if err := config.SaveSession(""); err != nil {
			fmt.Printf("Error clearing saved session: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("Logged out.")
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
