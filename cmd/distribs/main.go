package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/astrobits/constants"
	"github.com/lixenwraith/astrobits/distribs"
	"github.com/lixenwraith/astrobits/engine"
	"github.com/lixenwraith/astrobits/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	bins   int
	seed   uint64
	debug  bool
	logDir string
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "distribs",
		Short:        "Live histograms of a uniform draw and its tangent transform",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.bins < 1 {
				return errors.Errorf("--bins must be positive, got %d", opts.bins)
			}
			return run(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.bins, "bins", constants.UniformBins, "histogram bins")
	f.Uint64Var(&opts.seed, "seed", 0, "random seed, 0 picks one from the clock")
	f.BoolVar(&opts.debug, "debug", false, "write a debug log")
	f.StringVar(&opts.logDir, "log-dir", logging.DefaultDir, "directory for the debug log")
	return cmd
}

func run(ctx context.Context, opts *options) error {
	log, closeLog, err := logging.Setup(logging.Options{
		Enabled:    opts.debug,
		Dir:        opts.logDir,
		File:       "distribs.log",
		MaxSizeMB:  logging.DefaultMaxSizeMB,
		MaxBackups: 1,
	})
	if err != nil {
		return err
	}
	defer closeLog()

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info("starting", zap.Int("bins", opts.bins), zap.Uint64("seed", seed))

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	defer screen.Fini()

	crash := crashHandler(screen)
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	modelOpts := distribs.DefaultOptions()
	modelOpts.Bins = opts.bins
	modelOpts.Seed = seed
	app := distribs.NewApp(screen, distribs.NewModel(modelOpts), constants.PixelsPerDot, log)

	loop := engine.NewLoop(screen, constants.DistribsUpdateRate, app)
	loop.SetCrashHandler(crash)

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func crashHandler(screen tcell.Screen) func(any) {
	return func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mDISTRIBS CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
}
