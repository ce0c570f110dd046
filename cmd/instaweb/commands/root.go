package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"instaweb/internal/components/configutil"
	"instaweb/internal/components/telemetry"
	"instaweb/internal/instagram"

	"github.com/spf13/cobra"
)

type Config struct {
	Username         string           `json:"username"`
	Password         string           `json:"password"`
	Session          instagram.Tokens `json:"session"`
	BaseUrl          string           `json:"base_url"`
	RootUrl          string           `json:"root_url"`
	TimeoutSeconds   int              `json:"timeout_seconds"`
	CloudflareBypass bool             `json:"cloudflare_bypass"`
}

var (
	configPath *string
	verbose    *bool
	tel        telemetry.Telemetry
)

var rootCmd = &cobra.Command{
	Use:           "instaweb",
	Short:         "instaweb is a CLI for instagram's private web api.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(*verbose)
		if *verbose {
			slog.DebugContext(cmd.Context(), "verbose logging enabled")
		}

		var err error
		tel, err = telemetry.SetupFromEnv(cmd.Context(), "instaweb")
		if err != nil {
			return fmt.Errorf("setup telemetry: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return tel.Shutdown(ctx)
	},
}

func init() {
	configPath = rootCmd.PersistentFlags().String("config", "config.json5", "The config file, <name>.local.<ext> next to it overrides it.")
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging and dump http messages to .dev/resty.")
}

func readConfig() (Config, error) {
	cfg, err := configutil.ReadConfig[Config](*configPath)
	if os.IsNotExist(err) {
		slog.Debug("no config file found, using defaults", "path", *configPath)
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return cfg, nil
}

func createClient(cfg Config) (*instagram.Client, error) {
	opts := instagram.Options{
		BaseURL:          cfg.BaseUrl,
		RootURL:          cfg.RootUrl,
		Session:          cfg.Session,
		Timeout:          time.Duration(cfg.TimeoutSeconds) * time.Second,
		CloudflareBypass: cfg.CloudflareBypass,
		Telemetry:        telemetry.SlogAPI{},
	}
	if *verbose {
		out, err := telemetry.NewFilesystemOutput(".dev/resty/instagram")
		if err != nil {
			return nil, err
		}
		opts.MessageOutput = out
	}
	return instagram.NewClient(opts)
}

// clientCommand wraps a command body that needs a configured client.
func clientCommand(run func(cmd *cobra.Command, client *instagram.Client, cfg Config, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := readConfig()
		if err != nil {
			return err
		}
		client, err := createClient(cfg)
		if err != nil {
			return err
		}
		return run(cmd, client, cfg, args)
	}
}

// ExecuteContext runs the CLI and returns the process exit code.
func ExecuteContext(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
