package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"pong/core"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	freq   float64
	length time.Duration
}

var tones = map[core.EventKind]tone{
	core.EventWallBounce: {freq: 440, length: 30 * time.Millisecond},  // 撞牆
	core.EventPaddleHit:  {freq: 880, length: 40 * time.Millisecond},  // 撞球拍
	core.EventGoal:       {freq: 220, length: 250 * time.Millisecond}, // 得分
}

// Sound plays a short tone for every game event. It stays silent until Open succeeds.
type Sound struct {
	mixer  *beep.Mixer
	opened bool
}

func New() *Sound {
	return &Sound{mixer: &beep.Mixer{}}
}

func (s *Sound) Open() error {
	if s.opened {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.opened = true
	return nil
}

func (s *Sound) Enabled() bool {
	return s.opened
}

func (s *Sound) Play(events []core.Event) {
	if !s.opened || len(events) == 0 {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	for _, ev := range events {
		if streamer, ok := Tone(ev.Kind); ok {
			s.mixer.Add(streamer)
		}
	}
}

func (s *Sound) Close() {
	if !s.opened {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.opened = false
}

// Tone builds the streamer for an event kind; false for kinds without a sound.
func Tone(kind core.EventKind) (beep.Streamer, bool) {
	t, ok := tones[kind]
	if !ok {
		return nil, false
	}
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		return nil, false
	}
	quiet := &effects.Volume{Streamer: sine, Base: 2, Volume: -2}
	return beep.Take(sampleRate.N(t.length), quiet), true
}
