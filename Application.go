package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell"
	"github.com/google/uuid"
	"golang.org/x/term"

	"pong/config"
	"pong/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	loader := config.NewLoader(os.Getenv("PONG_ENV"))
	settings, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	session := uuid.New().String()
	logger.Log.Init(settings.Log)
	logger.Log.WithSession(session)
	logger.Log.Info(fmt.Sprintf(logger.SessionStartMsg, session))
	if settings.File != "" {
		logger.Log.Info(fmt.Sprintf(logger.ConfigLoadedMsg, settings.File))
	} else {
		logger.Log.Info(logger.ConfigDefaultMsg)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "pong needs a terminal on stdout")
		return 1
	}

	screen, err := initScreen()
	if err != nil {
		logger.Log.Error(err.Error())
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game := newPongGame(screen, settings, rand.New(rand.NewSource(time.Now().UnixNano())))
	defer game.close()

	loader.Watch(game.reload)

	if err := game.startGameLoop(ctx); err != nil {
		logger.Log.Error(err.Error())
		return 1
	}
	return 0
}

func initScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	return screen, nil
}
