package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"pong/core"
	"pong/logger"
)

var ErrInvalid = errors.New("invalid setting")

type Settings struct {
	File      string // 實際讀到的設定檔，沒有就是空字串
	FrameRate int
	KeyHold   time.Duration
	Sound     bool
	DebugHud  bool
	Tuning    core.Tuning
	Log       logger.Options
}

type Loader struct {
	v *viper.Viper
}

// NewLoader reads pong.properties, or properties/<env>.properties when env is set,
// from the given directories (./ by default). PONG_<KEY> environment variables win.
func NewLoader(env string, paths ...string) *Loader {
	v := viper.New()

	name := "pong"
	if env != "" {
		name = fmt.Sprintf("%s/%s", "properties", env)
	}
	v.SetConfigName(name)
	v.SetConfigType("properties")
	if len(paths) == 0 {
		paths = []string{"./"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("PONG")
	v.AutomaticEnv()
	setDefaults(v)

	return &Loader{v: v}
}

func Load(env string) (*Settings, error) {
	return NewLoader(env).Load()
}

// Load reads the config file if there is one. A missing file is not an error.
func (l *Loader) Load() (*Settings, error) {
	err := l.v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return l.settings()
}

// Watch calls onChange with freshly read settings every time the config file changes.
// It runs on viper's watcher goroutine. Returns false when no file was loaded.
func (l *Loader) Watch(onChange func(*Settings, error)) bool {
	if l.v.ConfigFileUsed() == "" {
		return false
	}
	l.v.OnConfigChange(func(e fsnotify.Event) {
		logger.Log.Info(fmt.Sprintf(logger.ConfigChangedMsg, e.Name))
		onChange(l.settings())
	})
	l.v.WatchConfig()
	return true
}

func (l *Loader) settings() (*Settings, error) {
	v := l.v
	s := &Settings{
		File:      v.ConfigFileUsed(),
		FrameRate: cast.ToInt(v.Get("frameRate")),
		KeyHold:   time.Duration(cast.ToInt(v.Get("keyHoldMs"))) * time.Millisecond,
		Sound:     cast.ToBool(v.Get("sound")),
		DebugHud:  cast.ToBool(v.Get("debugHud")),
		Tuning: core.Tuning{
			PaddleLengthPercent:      cast.ToFloat64(v.Get("paddleLengthPercent")),
			PaddleWidthPercent:       cast.ToFloat64(v.Get("paddleWidthPercent")),
			PaddleOffset:             cast.ToFloat64(v.Get("paddleOffset")),
			PaddleMaxSpeedFactor:     cast.ToFloat64(v.Get("paddleMaxSpeedFactor")),
			PaddleAccelerationFactor: cast.ToFloat64(v.Get("paddleAccelerationFactor")),
			PaddleFriction:           cast.ToFloat64(v.Get("paddleFriction")),
			PinnedSpeedThreshold:     cast.ToFloat64(v.Get("pinnedSpeedThreshold")),
			BallSize:                 cast.ToFloat64(v.Get("ballSize")),
			BallSpawnJitter:          cast.ToInt(v.Get("ballSpawnJitter")),
			BallMinSpeedX:            cast.ToInt(v.Get("ballMinSpeedX")),
			BallMaxSpeedX:            cast.ToInt(v.Get("ballMaxSpeedX")),
			BallMaxSpeedY:            cast.ToInt(v.Get("ballMaxSpeedY")),
			BallHitJitter:            cast.ToFloat64(v.Get("ballHitJitter")),
			BallSpinDivisor:          cast.ToFloat64(v.Get("ballSpinDivisor")),
			BallMaxAcceleration:      cast.ToFloat64(v.Get("ballMaxAcceleration")),
		},
		Log: logger.Options{
			Filename:   cast.ToString(v.Get("logFilename")),
			MaxSize:    cast.ToInt(v.Get("maxSize")),
			MaxBackups: cast.ToInt(v.Get("maxBackups")),
			MaxAge:     cast.ToInt(v.Get("maxAge")),
			Compress:   cast.ToBool(v.Get("compress")),
			Level:      cast.ToString(v.Get("level")),
		},
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func setDefaults(v *viper.Viper) {
	t := core.DefaultTuning()

	v.SetDefault("frameRate", 80)
	v.SetDefault("keyHoldMs", 150)
	v.SetDefault("sound", false)
	v.SetDefault("debugHud", false)

	v.SetDefault("paddleLengthPercent", t.PaddleLengthPercent)
	v.SetDefault("paddleWidthPercent", t.PaddleWidthPercent)
	v.SetDefault("paddleOffset", t.PaddleOffset)
	v.SetDefault("paddleMaxSpeedFactor", t.PaddleMaxSpeedFactor)
	v.SetDefault("paddleAccelerationFactor", t.PaddleAccelerationFactor)
	v.SetDefault("paddleFriction", t.PaddleFriction)
	v.SetDefault("pinnedSpeedThreshold", t.PinnedSpeedThreshold)
	v.SetDefault("ballSize", t.BallSize)
	v.SetDefault("ballSpawnJitter", t.BallSpawnJitter)
	v.SetDefault("ballMinSpeedX", t.BallMinSpeedX)
	v.SetDefault("ballMaxSpeedX", t.BallMaxSpeedX)
	v.SetDefault("ballMaxSpeedY", t.BallMaxSpeedY)
	v.SetDefault("ballHitJitter", t.BallHitJitter)
	v.SetDefault("ballSpinDivisor", t.BallSpinDivisor)
	v.SetDefault("ballMaxAcceleration", t.BallMaxAcceleration)

	v.SetDefault("logFilename", "logs/pong.log")
	v.SetDefault("maxSize", 10)
	v.SetDefault("maxBackups", 3)
	v.SetDefault("maxAge", 28)
	v.SetDefault("compress", false)
	v.SetDefault("level", "Info")
}

func (s *Settings) Validate() error {
	t := s.Tuning
	switch {
	case s.FrameRate <= 0:
		return fmt.Errorf("%w: frameRate must be positive, got %d", ErrInvalid, s.FrameRate)
	case s.KeyHold <= 0:
		return fmt.Errorf("%w: keyHoldMs must be positive, got %v", ErrInvalid, s.KeyHold)
	case t.PaddleLengthPercent <= 0 || t.PaddleLengthPercent >= 100:
		return fmt.Errorf("%w: paddleLengthPercent must be in (0, 100), got %v", ErrInvalid, t.PaddleLengthPercent)
	case t.PaddleWidthPercent <= 0 || t.PaddleWidthPercent >= 50:
		return fmt.Errorf("%w: paddleWidthPercent must be in (0, 50), got %v", ErrInvalid, t.PaddleWidthPercent)
	case t.PaddleOffset < 0:
		return fmt.Errorf("%w: paddleOffset must not be negative, got %v", ErrInvalid, t.PaddleOffset)
	case t.PaddleMaxSpeedFactor <= 0 || t.PaddleAccelerationFactor <= 0:
		return fmt.Errorf("%w: paddle speed factors must be positive", ErrInvalid)
	case t.PaddleFriction < 0 || t.PinnedSpeedThreshold < 0:
		return fmt.Errorf("%w: paddleFriction and pinnedSpeedThreshold must not be negative", ErrInvalid)
	case t.BallSize <= 0:
		return fmt.Errorf("%w: ballSize must be positive, got %v", ErrInvalid, t.BallSize)
	case t.BallMinSpeedX <= 0 || t.BallMinSpeedX > t.BallMaxSpeedX:
		return fmt.Errorf("%w: need 0 < ballMinSpeedX <= ballMaxSpeedX, got %d and %d", ErrInvalid, t.BallMinSpeedX, t.BallMaxSpeedX)
	case t.BallMaxSpeedY < 0 || t.BallSpawnJitter < 0 || t.BallHitJitter < 0:
		return fmt.Errorf("%w: ball speeds and jitters must not be negative", ErrInvalid)
	case s.Log.Filename == "":
		return fmt.Errorf("%w: logFilename must be set", ErrInvalid)
	}
	return nil
}
