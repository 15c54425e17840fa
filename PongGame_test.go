package main

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell"

	"pong/config"
	"pong/core"
)

func newTestGame(t *testing.T) (*pongGame, tcell.SimulationScreen) {
	t.Helper()
	settings, err := config.NewLoader("", t.TempDir()).Load()
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(80, 30)
	return newPongGame(screen, settings, rand.New(rand.NewSource(1))), screen
}

func runLoop(t *testing.T, p *pongGame, ctx context.Context) {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- p.startGameLoop(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("loop returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestLoopQuitsOnKey(t *testing.T) {
	p, screen := newTestGame(t)
	defer p.close()

	screen.InjectKey(tcell.KeyRune, 's', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	runLoop(t, p, context.Background())
}

func TestLoopQuitsOnEscape(t *testing.T) {
	p, screen := newTestGame(t)
	defer p.close()

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	runLoop(t, p, context.Background())
}

func TestLoopStopsOnCancel(t *testing.T) {
	p, _ := newTestGame(t)
	defer p.close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	runLoop(t, p, ctx)
}

func TestPauseFreezesSimulation(t *testing.T) {
	p, _ := newTestGame(t)
	defer p.close()

	if quit := p.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone)); quit {
		t.Fatal("pause key should not quit")
	}
	if !p.paused {
		t.Fatal("expected paused")
	}

	ballX, ballY := p.game.Ball.X, p.game.Ball.Y
	p.updateState(1)
	if p.game.Ball.X != ballX || p.game.Ball.Y != ballY {
		t.Errorf("ball moved while paused: (%v,%v) -> (%v,%v)", ballX, ballY, p.game.Ball.X, p.game.Ball.Y)
	}

	p.handleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if p.paused {
		t.Fatal("space should resume")
	}
	p.updateState(0.1)
	if p.game.Ball.X == ballX {
		t.Error("ball should move after resume")
	}
}

func TestDebugToggleAndReload(t *testing.T) {
	p, screen := newTestGame(t)
	defer p.close()

	p.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
	if !p.debug {
		t.Fatal("d should enable the debug line")
	}
	p.drawView()
	cells, width, _ := screen.GetContents()
	if width == 0 || len(cells[0].Runes) == 0 || cells[0].Runes[0] != 'f' {
		t.Errorf("debug line missing from row 0")
	}

	settings := &config.Settings{DebugHud: false}
	settings.Log.Level = "Warn"
	p.reload(settings, nil)
	p.applySettings()
	if p.debug {
		t.Error("reload should switch the debug line off")
	}
}

func TestHeldKeyMovesPaddle(t *testing.T) {
	p, _ := newTestGame(t)
	defer p.close()

	start := p.game.Player1.Y
	p.handleEvent(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone))
	p.keyboard.Apply(p.controls, time.Now())
	if !p.controls.For(core.Player1).Down {
		t.Fatal("s should hold Player1 down")
	}
	for i := 0; i < 10; i++ {
		p.updateState(1.0 / 60)
	}
	if p.game.Player1.Y <= start {
		t.Errorf("paddle did not move down: %v -> %v", start, p.game.Player1.Y)
	}
}
