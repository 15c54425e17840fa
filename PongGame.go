package main

import (
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell"
	"github.com/sirupsen/logrus"

	"pong/audio"
	"pong/config"
	"pong/core"
	"pong/display"
	"pong/logger"
)

// pongGame owns everything the loop touches. Only the loop goroutine uses it,
// except reload, which hands settings over through a channel.
type pongGame struct {
	tscreen  tcell.Screen
	screen   *display.Screen
	keyboard *display.Keyboard
	sound    *audio.Sound
	clock    *core.Clock
	controls *core.Controls
	game     *core.Game

	paused bool
	debug  bool

	changes chan *config.Settings
}

func newPongGame(tscreen tcell.Screen, settings *config.Settings, rng *rand.Rand) *pongGame {
	controls := &core.Controls{}
	p := &pongGame{
		tscreen:  tscreen,
		screen:   display.NewScreen(tscreen),
		keyboard: display.NewKeyboard(settings.KeyHold),
		sound:    audio.New(),
		clock:    core.NewClock(settings.FrameRate),
		controls: controls,
		game:     core.NewGame(core.DefaultPlayingArea(), settings.Tuning, controls, rng),
		debug:    settings.DebugHud,
		changes:  make(chan *config.Settings, 1),
	}

	if settings.Sound {
		if err := p.sound.Open(); err != nil {
			logger.Log.Warn(fmt.Sprintf(logger.SoundUnavailableMsg, err))
		}
	}

	width, height := tscreen.Size()
	logger.Log.Info(fmt.Sprintf(logger.ScreenSizeMsg, width, height))
	if !display.NewViewport(p.game.Area, width, height).Fits() {
		logger.Log.Warn(fmt.Sprintf(logger.ScreenTooSmallMsg, width, height, display.MinColumns, display.MinRows))
	}
	return p
}

// reload runs on the config watcher goroutine.
func (p *pongGame) reload(settings *config.Settings, err error) {
	if err != nil {
		logger.Log.Error(err.Error())
		return
	}
	select {
	case p.changes <- settings:
	default:
	}
}

// applySettings picks up live-reloadable settings between frames.
func (p *pongGame) applySettings() {
	select {
	case s := <-p.changes:
		logger.Log.SetLevel(s.Log.Level)
		p.debug = s.DebugHud
	default:
	}
}

func (p *pongGame) logEvents(events []core.Event) {
	for _, ev := range events {
		if ev.Kind != core.EventGoal {
			continue
		}
		score := p.game.Score()
		logger.Log.WithFields(logrus.Fields{
			"scorer": ev.Player.String(),
			"ballY":  ev.Y,
			"speedX": ev.SpeedX,
			"speedY": ev.SpeedY,
		}).Info(fmt.Sprintf(logger.GoalMsg, ev.Player, score.Of(core.Player1), score.Of(core.Player2)))
	}
}

func (p *pongGame) debugLine() string {
	return fmt.Sprintf("fps %.0f  speed %.1f / %.1f",
		p.clock.FPS(), p.game.Player1.Speed, p.game.Player2.Speed)
}

func (p *pongGame) close() {
	score := p.game.Score()
	logger.Log.Info(fmt.Sprintf(logger.SessionEndMsg, score.Of(core.Player1), score.Of(core.Player2)))
	p.sound.Close()
	p.tscreen.Fini()
}
