package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/evolveer/docker-python-framework/internal/config"
	"github.com/evolveer/docker-python-framework/internal/server"
	"github.com/evolveer/docker-python-framework/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "docker-python-framework",
	Short: "Serve the demo landing page and system API",
	Long: `docker-python-framework serves an HTML landing page together with
health, runtime info, and filtered environment endpoints under /api.
It is configured through the DEBUG, PORT, and HOST environment variables.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(os.Getenv)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and exit",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "docker-python-framework %s\n", version.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func serve(getenv func(string) string) error {
	cfg, err := config.Load(getenv)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	setupLogger(cfg.Debug)

	slog.Info("starting docker-python-framework",
		"version", version.Version,
		"go_version", runtime.Version(),
		"debug", cfg.Debug,
		"addr", cfg.Addr(),
	)

	srv := server.New(server.Config{App: cfg})
	return srv.Run(cfg.Addr())
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
