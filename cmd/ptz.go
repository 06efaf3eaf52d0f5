package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// Variables to hold flag values
var presetID int

// Parent Command
var ptzCmd = &cobra.Command{
	Use:   "ptz",
	Short: "Control pan-tilt-zoom",
	Long:  `Move the camera to stored preset positions and list them.`,
}

var ptzGotoCmd = &cobra.Command{
	Use:     "goto",
	Short:   "Move the camera to a stored preset",
	Example: `  reolink-cli ptz goto --preset 5`,
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		if err := api.GotoPtzPreset(presetID); err != nil {
			fmt.Printf("Error moving to preset %d: %v\n", presetID, err)
			os.Exit(1)
		}

		fmt.Println("Success.")
	},
}

var ptzPresetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the presets stored on the camera",
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		presets, err := api.GetPtzPresets()
		if err != nil {
			fmt.Printf("Error fetching presets: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(presets); err != nil {
				fmt.Printf("Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tENABLED\tCHANNEL")
		fmt.Fprintln(w, "--\t----\t-------\t-------")

		for _, p := range presets {
			fmt.Fprintf(w, "%d\t%s\t%t\t%d\n", p.ID, p.Name, p.Enable == 1, p.Channel)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(ptzCmd)
	ptzCmd.AddCommand(ptzGotoCmd)
	ptzCmd.AddCommand(ptzPresetsCmd)

	ptzGotoCmd.Flags().IntVar(&presetID, "preset", 0, "ID of the preset position")
	_ = ptzGotoCmd.MarkFlagRequired("preset")
}
