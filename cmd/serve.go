package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"sqlrecsys/server/internal/config"
	"sqlrecsys/server/internal/logging"
	"sqlrecsys/server/internal/server"
)

// serveCmd starts the gRPC listener and blocks until shutdown.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the schema review gRPC server",
	Long: `The serve command loads the configuration from the environment, connects to
the configured model provider and serves the SchemaReviewService until it
receives SIGINT or SIGTERM. In-flight reviews are drained for the configured
grace period before the process exits.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		logging.SetLevel(logging.ParseLevel(cfg.LogLevel))

		ctx := context.Background()
		srv, err := server.New(ctx, cfg)
		if err != nil {
			return err
		}
		return srv.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
