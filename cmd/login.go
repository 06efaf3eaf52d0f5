package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"reolink-cli/internal/client"
	"reolink-cli/internal/config"
)

// Variables to hold flag values
var (
	host string
	user string
	pass string
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with the camera",
	Long: `Authenticates against the camera's CGI API and saves the session
token locally for future commands.

Example:
  reolink-cli login --host "https://192.168.1.50" --username admin --password pass`,
	Run: func(cmd *cobra.Command, args []string) {
		// Clean up input host (remove trailing slash if present)
		host = strings.TrimRight(host, "/")

		fmt.Printf("Authenticating against %s as user '%s'...\n", host, user)

		api := client.New(client.Config{
			BaseURL:  host,
			Username: user,
			Password: pass,
			Logger:   newLogger(),
		})

		// New never fails outright; an empty token is the failure signal.
		if api.Token() == "" {
			fmt.Println("Error: login failed, check host and credentials.")
			os.Exit(1)
		}

		fmt.Println("Login successful. Saving configuration...")

		// Save the base URL and username so subsequent commands know
		// where to connect.
		viper.Set("base_url", host)
		viper.Set("username", user)

		if err := config.SaveSession(api.Token()); err != nil {
			log.Fatalf("Failed to save configuration file: %v", err)
		}

		fmt.Printf("Session saved. You can now run commands like './reolink-cli ir get'.\n")
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVar(&host, "host", "", "Camera base URL (e.g. https://192.168.1.50)")
	loginCmd.Flags().StringVarP(&user, "username", "u", "admin", "Camera username")
	loginCmd.Flags().StringVarP(&pass, "password", "p", "", "Camera password")

	_ = loginCmd.MarkFlagRequired("host")
	_ = loginCmd.MarkFlagRequired("password")
}
