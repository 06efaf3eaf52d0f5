package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"reolink-cli/pkg/models"
)

// Parent Command
var irCmd = &cobra.Command{
	Use:   "ir",
	Short: "Manage infrared lights",
	Long:  `Query or switch the camera's infrared light mode.`,
}

var irGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the current IR light mode",
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		state, err := api.GetIrLights()
		if err != nil {
			fmt.Printf("Error getting IR lights state: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			fmt.Printf("{\"state\":%q}\n", state)
			return
		}
		fmt.Println(state)
	},
}

var irSetCmd = &cobra.Command{
	Use:       "set [Auto|Off]",
	Short:     "Switch the IR light mode",
	Example:   `  reolink-cli ir set Off`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{models.IrLightsAuto, models.IrLightsOff},
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		if err := api.SetIrLights(args[0]); err != nil {
			fmt.Printf("Error setting IR lights state: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("Success.")
	},
}

func init() {
	rootCmd.AddCommand(irCmd)
	irCmd.AddCommand(irGetCmd)
	irCmd.AddCommand(irSetCmd)
}
