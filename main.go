package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-editor/simulation"
	"github.com/sheikhrachel/go-gol-editor/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON configuration file")
	openPath := flag.String("open", "", "saved .gol file to open at start")
	preset := flag.String("preset", "", "preset pattern to load at start (glider, gun, spaceship)")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		log.Printf("Using default configuration (%v)", err)
		config = utils.DefaultConfig()
	}

	ctrl, err := simulation.New(config)
	if err != nil {
		log.Fatalf("creating simulation: %v", err)
	}
	if err = loadInitialState(ctrl, *openPath, *preset); err != nil {
		log.Fatalf("loading initial state: %v", err)
	}

	if err = run(ctrl, config, *openPath); err != nil {
		log.Fatal(err)
	}
}

func loadInitialState(ctrl *simulation.Controller, openPath, preset string) error {
	if openPath != "" {
		data, err := os.ReadFile(openPath)
		if err != nil {
			return errors.Wrapf(err, "[loadInitialState] failed to read file: %+v", openPath)
		}
		return ctrl.Load(data)
	}
	if preset != "" {
		return ctrl.LoadPreset(preset)
	}
	return nil
}

// run owns the terminal for the lifetime of the game. Input is polled on one
// goroutine and handed to the game loop, which is the only caller of ctrl.
func run(ctrl *simulation.Controller, config utils.Config, openPath string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[run] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return errors.Wrap(err, "[run] failed to initialize screen")
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.Clear()

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		eg, egCtx = errgroup.WithContext(ctx)
		events    = make(chan tcell.Event)
		quit      = make(chan struct{})
		g         = newGame(ctrl, NewTerminalRenderer(screen), config.SaveDir, openPath)
	)

	eg.Go(func() error {
		screen.ChannelEvents(events, quit)
		return nil
	})
	eg.Go(func() error {
		defer close(quit)
		return g.loop(egCtx, events)
	})

	return eg.Wait()
}
