package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell"

	"pong/display"
	"pong/logger"
)

// startGameLoop runs input, update and draw until a quit key or ctx ends it.
func (p *pongGame) startGameLoop(ctx context.Context) error {
	inputChan := initUserInput(p.tscreen)
	for {
		if p.userOperationHandle(inputChan) {
			return nil
		}

		select {
		case <-ctx.Done():
			logger.Log.Info(fmt.Sprintf(logger.QuitRequestedMsg, ctx.Err()))
			return nil
		default:
		}

		p.applySettings()

		dt := p.clock.Tick()
		p.keyboard.Apply(p.controls, time.Now())
		p.updateState(dt)
		p.drawView()
	}
}

// initUserInput forwards screen events from a goroutine, since PollEvent blocks.
// The channel closes once the screen is finalized.
func initUserInput(screen tcell.Screen) chan tcell.Event {
	inputChan := make(chan tcell.Event, 64)

	go func() {
		defer close(inputChan)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			inputChan <- ev
		}
	}()

	return inputChan
}

// userOperationHandle drains pending events without blocking and reports whether to quit.
func (p *pongGame) userOperationHandle(inputChan chan tcell.Event) bool {
	for {
		select {
		case ev, ok := <-inputChan:
			if !ok {
				return true
			}
			if p.handleEvent(ev) {
				return true
			}
		default:
			return false
		}
	}
}

func (p *pongGame) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		p.tscreen.Sync()

	case *tcell.EventKey:
		switch p.keyboard.HandleKey(ev) {
		case display.ActionQuit:
			logger.Log.Info(fmt.Sprintf(logger.QuitRequestedMsg, ev.Name()))
			return true

		case display.ActionPause:
			p.paused = !p.paused
			p.keyboard.Release()
			p.controls.Reset()
			logger.Log.Info(fmt.Sprintf(logger.PauseMsg, p.paused))

		case display.ActionDebug:
			p.debug = !p.debug
		}
	}
	return false
}

func (p *pongGame) updateState(dt float64) {
	if p.paused {
		return
	}
	events := p.game.Tick(dt)
	p.sound.Play(events)
	p.logEvents(events)
}

func (p *pongGame) drawView() {
	frame := p.game.Frame()
	frame.Paused = p.paused
	if p.debug {
		frame.Debug = p.debugLine()
	}
	p.screen.Draw(frame)
	p.screen.Show()
}
