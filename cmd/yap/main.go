// Package main is the entry point for yap, a pager for files and pipes.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dshills/yap/internal/app"
	"github.com/dshills/yap/internal/config"
	"github.com/dshills/yap/internal/input"
	"github.com/dshills/yap/internal/renderer/backend"
	"github.com/dshills/yap/internal/renderer/statusline"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "yap: %v\n", err)
		return 1
	}
	return 0
}

func newRootCommand() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "yap [flags] [file]",
		Short: "Yet another pager",
		Long: `yap pages a file or standard input in a scrollable, pannable view.
Lines are shown as they arrive, so yap can page the output of a command
that is still running.`,
		Example: `  # Page a file
  yap notes.txt

  # Page command output
  make 2>&1 | yap

  # Follow a growing log
  yap -f /var/log/app.log`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return page(cmd, cfg, args)
		},
	}

	if err := config.BindFlags(cmd.Flags(), v); err != nil {
		// Flag names are fixed, so this only fails on a programming error.
		panic(err)
	}
	return cmd
}

func page(cmd *cobra.Command, cfg *config.Config, args []string) error {
	src, err := openInput(args, os.Stdin, isTerminal)
	if err != nil {
		return err
	}
	defer src.Close()

	logger, closeLog, err := app.OpenLogFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := []input.Option{
		input.WithTabWidth(cfg.TabWidth),
		input.WithLogger(logger),
	}
	if cfg.Follow {
		if src.Followable() {
			opts = append(opts, input.WithFollow(src.Name()))
		} else {
			logger.Warn("follow ignored for non-file input", "input", src.Name())
		}
	}

	reader, err := input.NewReader(src, opts...)
	if err != nil {
		return err
	}

	term, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("create terminal: %w", err)
	}

	application, err := app.New(term, reader, app.Options{
		Logger:      logger,
		StatusStyle: statusline.ColorStyle(cfg.StatusBarColor()),
	})
	if err != nil {
		return err
	}

	// Raw mode turns Ctrl-C into a key, so only signals from outside end up here.
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	logger.Info("paging", "input", src.Name(), "follow", cfg.Follow, "version", version)
	err = application.Run(ctx)

	var perr *app.RecoveredPanicError
	switch {
	case err == nil, errors.Is(err, app.ErrQuit):
		return nil
	case errors.As(err, &perr):
		// The stack went to the log.
		return errors.New(perr.Summary())
	default:
		return err
	}
}
