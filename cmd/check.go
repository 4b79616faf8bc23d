package cmd

import (
	"context"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"sqlrecsys/server/internal/config"
	"sqlrecsys/server/internal/llm"
	"sqlrecsys/server/internal/logging"
)

// checkCmd validates the environment configuration and optionally probes the
// configured model provider with a trivial completion.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate configuration and provider connectivity",
	Long: `The check command loads the configuration from the environment, validates it,
and prints what the server would run with. With --probe it also sends a one-word
completion to the configured provider to verify the credentials actually work.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		probe, _ := cmd.Flags().GetBool("probe")

		cfg, err := config.Load()
		if err != nil {
			pterm.Println("❌ " + logging.Mask(err.Error()))
			return err
		}
		if err := cfg.Validate(); err != nil {
			pterm.Println("❌ " + logging.Mask(err.Error()))
			return err
		}

		pterm.DefaultSection.Println("Configuration")
		items := pterm.TableData{
			{"model type", string(cfg.ModelType)},
			{"model name", cfg.SelectedModelName()},
			{"grpc port", pterm.Sprintf("%d", cfg.GRPCPort)},
			{"review timeout", cfg.ReviewTimeout.String()},
			{"cache", cacheStatus(cfg)},
			{"metrics", metricsStatus(cfg)},
		}
		if err := pterm.DefaultTable.WithData(items).Render(); err != nil {
			return err
		}

		if !probe {
			pterm.Println()
			pterm.Println("✅ Configuration is valid")
			return nil
		}

		spinner, _ := pterm.DefaultSpinner.Start("Probing model provider...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		client, err := llm.New(ctx, cfg)
		if err != nil {
			spinner.Fail("Provider setup failed")
			pterm.Println(logging.FormatProviderError(err))
			return err
		}
		if _, err := client.Complete(ctx, "", "Reply with the single word: ok"); err != nil {
			spinner.Fail("Provider probe failed")
			pterm.Println(logging.FormatProviderError(err))
			return err
		}
		spinner.Success("Provider answered")
		return nil
	},
}

func cacheStatus(cfg config.Config) string {
	if cfg.CacheAddr == "" {
		return "disabled"
	}
	return pterm.Sprintf("%s (ttl %s)", cfg.CacheAddr, cfg.CacheTTL)
}

func metricsStatus(cfg config.Config) string {
	if cfg.MetricsPort == 0 {
		return "disabled"
	}
	return pterm.Sprintf("port %d", cfg.MetricsPort)
}

func init() {
	checkCmd.Flags().Bool("probe", false, "Send a test completion to the provider")
	rootCmd.AddCommand(checkCmd)
}
