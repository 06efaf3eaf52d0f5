package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Variables to hold flag values
var (
	snapshotChannel int
	snapshotOutput  string
)

var snapshotCmd = &cobra.Command{
	Use:     "snapshot",
	Short:   "Take a JPEG snapshot from the camera",
	Example: `  reolink-cli snapshot --output "image.jpg"`,
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		fmt.Printf("Requesting snapshot from channel %d ...\n", snapshotChannel)

		imgData, err := api.Snapshot(snapshotChannel)
		if err != nil {
			fmt.Printf("Error getting snapshot: %v\n", err)
			os.Exit(1)
		}

		if err := os.WriteFile(snapshotOutput, imgData, 0644); err != nil {
			fmt.Printf("Error writing file: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Snapshot saved to %s\n", snapshotOutput)
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)

	snapshotCmd.Flags().IntVar(&snapshotChannel, "channel", 0, "Camera channel")
	snapshotCmd.Flags().StringVar(&snapshotOutput, "output", "snapshot.jpg", "Output filename")
}
