package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"reolink-cli/internal/client"
	"reolink-cli/internal/config"
)

var (
	cfgFile    string
	jsonOutput bool
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "reolink-cli",
	Short: "A CLI for controlling Reolink cameras over their HTTP API",
	Long: `Log in to a Reolink camera, query device state and issue control
commands (IR lights, PTZ presets, snapshots) via the CGI API.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() { config.InitConfig(cfgFile) })

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.reolink-cli.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// newLogger builds the console logger handed to the client. The library
// never configures logging itself, the host wires it up here.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// setupClient resumes the saved camera session for subcommands.
func setupClient() *client.Client {
	baseURL := viper.GetString("base_url")
	token := viper.GetString("token")

	if baseURL == "" || token == "" {
		fmt.Println("Error: Not logged in. Please run 'reolink-cli login' first.")
		os.Exit(1)
	}

	return client.Resume(client.Config{
		BaseURL:  baseURL,
		Username: viper.GetString("username"),
		Logger:   newLogger(),
	}, token)
}
