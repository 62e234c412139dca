package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajitpratap0/memkit/pkg/config"
	"github.com/ajitpratap0/memkit/pkg/logger"
)

var version = "0.1.0"

// app holds state shared by every command.
type app struct {
	configPath string
	cfg        *config.Config
}

// load reads the configuration and initializes the global logger from it.
func (a *app) load() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.Logging.Logger()); err != nil {
		return err
	}
	a.cfg = cfg
	logger.Debug("configuration loaded",
		zap.String("path", a.configPath),
		zap.Bool("concurrent", cfg.Pool.Concurrent),
		zap.Int("max_retained", cfg.Pool.MaxRetained),
	)
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "memkit",
		Short: "memkit - pooled collections and zero-copy segments",
		Long: heredoc.Doc(`
			memkit recycles collections through typed pools and views existing
			storage through bounds-checked, zero-copy segments.

			Configuration is read from --config (YAML) and MEMKIT_* environment
			variables. A .env file in the working directory is loaded first.`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to YAML configuration file")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "memkit v%s\n", version)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Marshal(a.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	root.AddCommand(newBenchCmd(a))
	root.AddCommand(newSegmentCmd())
	root.AddCommand(newViewCmd())

	return root
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		_ = logger.Sync()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
