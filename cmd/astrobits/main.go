package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/astrobits/astro"
	"github.com/lixenwraith/astrobits/audio"
	"github.com/lixenwraith/astrobits/config"
	"github.com/lixenwraith/astrobits/engine"
	"github.com/lixenwraith/astrobits/logging"
	"github.com/lixenwraith/astrobits/status"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	configPath  string
	debug       bool
	logDir      string
	metricsAddr string
	mute        bool
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "astrobits",
		Short: "N-body gravity sandbox for the terminal",
		Long: `Drag with the mouse to pan, zoom or spawn bodies around the sun.
Keys: m/z/s click mode, j/k/l spawn size, d dynamic sun, +/- zoom, arrows pan, q quit.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "scene preset (.toml, .yaml or .yml)")
	f.BoolVar(&opts.debug, "debug", false, "write a debug log")
	f.StringVar(&opts.logDir, "log-dir", logging.DefaultDir, "directory for the debug log")
	f.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	f.BoolVar(&opts.mute, "mute", false, "disable sound effects")
	return cmd
}

func run(ctx context.Context, opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	log, closeLog, err := logging.Setup(logging.Options{
		Enabled:    opts.debug,
		Dir:        opts.logDir,
		File:       "astrobits.log",
		MaxSizeMB:  logging.DefaultMaxSizeMB,
		MaxBackups: 1,
	})
	if err != nil {
		return err
	}
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	defer screen.Fini()

	// Panic recovery: restore the terminal before printing the trace
	crash := crashHandler(screen)
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	screen.HideCursor()

	sounds := audio.NewSoundManager(opts.mute)
	if err := sounds.Initialize(); err != nil {
		log.Warn("continuing without audio", zap.Error(err))
	}
	defer sounds.Cleanup()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	metrics := status.NewMetrics(reg)
	if opts.metricsAddr != "" {
		go func() {
			if err := status.Serve(ctx, opts.metricsAddr, reg, log); err != nil {
				log.Error("metrics server", zap.Error(err))
			}
		}()
	}

	game := astro.NewGame(screen, astro.Options{
		Config:  cfg,
		Sounds:  sounds,
		Metrics: metrics,
		Log:     log,
	})

	loop := engine.NewLoop(screen, cfg.TickPeriod(), game)
	loop.SetCrashHandler(crash)

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func crashHandler(screen tcell.Screen) func(any) {
	return func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mASTROBITS CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
}
