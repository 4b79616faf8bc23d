package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version holds the service version information.
	// This value is typically set at build time using -ldflags.
	Version = "0.0.0-dev"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the service version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sqlrecsys %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
