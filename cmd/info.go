package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show camera device information",
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		info, err := api.GetDevInfo()
		if err != nil {
			fmt.Printf("Error fetching device info: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(info); err != nil {
				fmt.Printf("Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintf(w, "Name\t%s\n", info.Name)
		fmt.Fprintf(w, "Model\t%s\n", info.Model)
		fmt.Fprintf(w, "Serial\t%s\n", info.Serial)
		fmt.Fprintf(w, "Firmware\t%s\n", info.FirmVer)
		fmt.Fprintf(w, "Hardware\t%s\n", info.HardVer)
		fmt.Fprintf(w, "Channels\t%d\n", info.ChannelNum)
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
