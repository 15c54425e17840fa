package display

import (
	"time"

	"github.com/gdamore/tcell"

	"pong/core"
)

type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionQuit
	ActionPause
	ActionDebug
)

const (
	keyUp = iota
	keyDown
)

// Keyboard turns key presses into held intents. Terminals never report key
// releases, so a key counts as held for a while after its last press (or repeat).
type Keyboard struct {
	hold    time.Duration
	pressed [2][2]time.Time // [player][keyUp/keyDown]
}

func NewKeyboard(hold time.Duration) *Keyboard {
	return &Keyboard{hold: hold}
}

// HandleKey records a key event and reports what it asked for. Unmapped keys give ActionNone.
func (k *Keyboard) HandleKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return k.press(core.Player2, keyUp, ev.When())
	case tcell.KeyDown:
		return k.press(core.Player2, keyDown, ev.When())
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return k.press(core.Player1, keyUp, ev.When())
		case 's', 'S':
			return k.press(core.Player1, keyDown, ev.When())
		case 'q', 'Q':
			return ActionQuit
		case 'p', 'P', ' ':
			return ActionPause
		case 'd', 'D':
			return ActionDebug
		}
	}
	return ActionNone
}

func (k *Keyboard) press(player core.Player, key int, when time.Time) Action {
	k.pressed[player][key] = when
	// 終端機只會重複最後按的鍵，反方向視為放開
	k.pressed[player][1-key] = time.Time{}
	return ActionMove
}

// Apply overwrites controls with the intents held at now.
func (k *Keyboard) Apply(controls *core.Controls, now time.Time) {
	for _, player := range []core.Player{core.Player1, core.Player2} {
		controls.Set(player, core.Intent{
			Up:   k.held(player, keyUp, now),
			Down: k.held(player, keyDown, now),
		})
	}
}

// Release forgets every press.
func (k *Keyboard) Release() {
	k.pressed = [2][2]time.Time{}
}

func (k *Keyboard) held(player core.Player, key int, now time.Time) bool {
	last := k.pressed[player][key]
	return !last.IsZero() && now.Sub(last) < k.hold
}
