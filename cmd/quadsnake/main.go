package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/quadsnake/config"
	"github.com/lixenwraith/quadsnake/constants"
	"github.com/lixenwraith/quadsnake/core"
	"github.com/lixenwraith/quadsnake/engine"
	"github.com/lixenwraith/quadsnake/input"
	"github.com/lixenwraith/quadsnake/remote"
	"github.com/lixenwraith/quadsnake/render"
)

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "quadsnake: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "quadsnake: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if logFile := setupLogging(cfg.LogDir, cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	// Bind before the TUI takes the terminal so a busy port is reported plainly
	var ln net.Listener
	if cfg.Remote.Enabled {
		var err error
		ln, err = net.Listen("tcp", cfg.Remote.Listen)
		if err != nil {
			return fmt.Errorf("remote listen %s: %w", cfg.Remote.Listen, err)
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
	screen.EnableMouse()
	screen.HideCursor()

	core.SetCrashCleanup(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	eng := engine.NewEngine(engine.DefaultGrid(), engine.NewRandomFood(cfg.Seed))
	session := engine.NewSession(eng, cfg.TickInterval)
	renderer := render.NewRenderer(screen)

	// Ticks only mark the frame dirty; drawing stays on this goroutine
	var dirty atomic.Bool
	unsubscribe := session.Subscribe(func(engine.Snapshot) { dirty.Store(true) })
	defer unsubscribe()

	// Deferred before the remote shutdown so it runs after it; a late tap
	// cannot restart the clock once the session is stopped
	session.Start(ctx)
	defer session.Stop()
	log.Printf("started: tick=%s seed=%d remote=%t", cfg.TickInterval, cfg.Seed, cfg.Remote.Enabled)

	if ln != nil {
		srv := remote.NewServer(session, log.Default(), cfg.Remote.AllowRemote)
		remoteCtx, cancelRemote := context.WithCancel(ctx)
		remoteDone := make(chan struct{})
		core.Go(func() {
			defer close(remoteDone)
			if err := srv.Serve(remoteCtx, ln); err != nil {
				log.Printf("remote: %v", err)
			}
		})
		defer func() {
			cancelRemote()
			<-remoteDone
		}()
	}

	width, height := screen.Size()
	machine := input.NewMachine(width, height)
	renderer.Draw(session.Snapshot())

	events := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("signal received, exiting")
			return nil

		case ev := <-events:
			intent := machine.Translate(ev)
			switch intent.Type {
			case input.IntentQuit:
				log.Printf("quit")
				return nil
			case input.IntentSteer:
				session.Steer(intent.Heading)
			case input.IntentTap:
				session.Tap(intent.Heading)
			case input.IntentRestart:
				session.Restart()
			case input.IntentResize:
				renderer.Redraw()
			}

		case <-frameTicker.C:
			if dirty.Swap(false) {
				renderer.Draw(session.Snapshot())
			}
		}
	}
}
