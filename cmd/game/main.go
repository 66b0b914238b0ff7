package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/tomz197/arena/internal/config"
	"github.com/tomz197/arena/internal/logging"
	"github.com/tomz197/arena/internal/loop/client"
	"github.com/tomz197/arena/internal/loop/server"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	tuning, err := config.Load()
	if err != nil {
		return err
	}

	// Stdout is the game screen, so logs only go to ARENA_LOG_FILE
	logger, closeLog, err := logging.FromEnv(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(tuning, logger)
	cl := client.NewClient(srv, tuning, bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{
		Renderer: lipgloss.NewRenderer(os.Stdout),
		FPS:      tuning.ClientFPS,
	})

	g, gctx := errgroup.WithContext(ctx)
	runCtx, cancel := context.WithCancel(gctx)

	g.Go(func() error {
		return srv.Run(runCtx)
	})
	g.Go(func() error {
		for e := range srv.Events() {
			logging.LogEvent(logger, e)
		}
		return nil
	})
	g.Go(func() error {
		// Quitting the client stops everything else
		defer cancel()
		return cl.Run(runCtx)
	})

	err = g.Wait()
	logger.Info("game closed")
	return err
}
