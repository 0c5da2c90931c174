package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/caoyingkang/Voronoi-diagram/pkg/config"
	"github.com/caoyingkang/Voronoi-diagram/pkg/logger"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

func (o *rootOptions) load() (*config.Config, error) {
	return config.Load(o.configPath)
}

// newLogger mirrors the log to stderr, at debug level with --verbose.
func (o *rootOptions) newLogger() *logger.ZapLogger {
	level := zapcore.InfoLevel
	if o.verbose {
		level = zapcore.DebugLevel
	}
	return logger.NewWithWriter(os.Stderr, level)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "app",
		Short:        "Fortune sweep beach line explorer",
		Long:         "Runs the sweep line of Fortune's algorithm over a site list and shows the beach line.",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default .voronoi.yaml in . or $HOME)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newSweepCmd(opts))

	return root
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
