// Package cmd provides the command-line interface for the schema review
// service. The serve command runs the gRPC server; check and review exist for
// operators to validate a deployment without a gRPC client at hand.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sqlrecsys/server/internal/logging"
)

var showVersion bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "sqlrecsys",
	Short:         "Schema review service backed by an LLM provider",
	Long:          `sqlrecsys reviews relational schemas and their workload: it sends the DDL and queries to a configured model provider (GigaChat, OpenAI or Gemini) and returns an improved schema, migrations and rewritten queries over gRPC.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("sqlrecsys %s\n", Version)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, logging.Mask(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
}
