// Command hoverdemo shows the persona grid in a terminal with the pixel
// hover effect on every tile.
//
// Keys: t toggles the theme, q or Esc quits.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/pixelhover"
	"github.com/gogpu/pixelhover/config"
	"github.com/gogpu/pixelhover/integration/termhost"
)

func main() {
	var (
		configPath = flag.String("config", "", "HCL configuration file")
		logPath    = flag.String("log", "", "write logs to this file")
		debug      = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	if err := run(*configPath, *logPath, *debug); err != nil {
		fmt.Fprintf(os.Stderr, "hoverdemo: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logPath string, debug bool) error {
	// The terminal belongs to tcell, so logs only go to a file.
	var logOut io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	pixelhover.SetLogger(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level})))

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	host, err := termhost.New(screen, cfg)
	if err != nil {
		return err
	}
	defer host.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := host.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	pixelhover.Logger().Info("hoverdemo: exit")
	return nil
}
