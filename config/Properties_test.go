package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"pong/core"
)

func writeProperties(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	s, err := NewLoader("", t.TempDir()).Load()
	if err != nil {
		t.Fatalf("expected defaults without a config file, got %v", err)
	}
	if s.File != "" {
		t.Errorf("expected no file, got %q", s.File)
	}
	if s.FrameRate != 80 || s.KeyHold != 150*time.Millisecond {
		t.Errorf("unexpected loop defaults: %d %v", s.FrameRate, s.KeyHold)
	}
	if s.Tuning != core.DefaultTuning() {
		t.Errorf("expected default tuning, got %+v", s.Tuning)
	}
	if s.Log.Level != "Info" || s.Log.Filename == "" {
		t.Errorf("unexpected log defaults %+v", s.Log)
	}
}

func TestLoadPropertiesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeProperties(t, dir, "pong.properties", "frameRate = 60\nsound = true\npaddleFriction = 0.5\nballMaxSpeedX = 40\nlevel = Warn\n")

	s, err := NewLoader("", dir).Load()
	if err != nil {
		t.Fatal(err)
	}
	if s.File != path {
		t.Errorf("expected file %q, got %q", path, s.File)
	}
	if s.FrameRate != 60 || !s.Sound || s.Tuning.PaddleFriction != 0.5 || s.Tuning.BallMaxSpeedX != 40 {
		t.Errorf("file values not applied: %+v", s)
	}
	if s.Tuning.BallSize != core.DefaultTuning().BallSize {
		t.Errorf("expected untouched keys to keep defaults, got ballSize %v", s.Tuning.BallSize)
	}
	if s.Log.Level != "Warn" {
		t.Errorf("expected level Warn, got %q", s.Log.Level)
	}
}

func TestLoadEnvironmentFile(t *testing.T) {
	dir := t.TempDir()
	writeProperties(t, dir, "properties/dev.properties", "frameRate = 30\n")

	s, err := NewLoader("dev", dir).Load()
	if err != nil {
		t.Fatal(err)
	}
	if s.FrameRate != 30 {
		t.Errorf("expected frameRate 30 from properties/dev, got %d", s.FrameRate)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeProperties(t, dir, "pong.properties", "level = Warn\n")
	t.Setenv("PONG_LEVEL", "Error")

	s, err := NewLoader("", dir).Load()
	if err != nil {
		t.Fatal(err)
	}
	if s.Log.Level != "Error" {
		t.Errorf("expected PONG_LEVEL to win, got %q", s.Log.Level)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []string{
		"frameRate = 0\n",
		"keyHoldMs = -1\n",
		"paddleLengthPercent = 120\n",
		"ballSize = 0\n",
		"ballMinSpeedX = 50\nballMaxSpeedX = 20\n",
		"paddleFriction = -1\n",
	}
	for _, content := range tests {
		dir := t.TempDir()
		writeProperties(t, dir, "pong.properties", content)

		_, err := NewLoader("", dir).Load()
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("%q: expected ErrInvalid, got %v", content, err)
		}
	}
}

func TestWatchWithoutFile(t *testing.T) {
	l := NewLoader("", t.TempDir())
	if _, err := l.Load(); err != nil {
		t.Fatal(err)
	}
	if l.Watch(func(*Settings, error) {}) {
		t.Error("expected Watch to refuse when no file was loaded")
	}
}

func TestWatchReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := writeProperties(t, dir, "pong.properties", "level = Info\n")

	l := NewLoader("", dir)
	if _, err := l.Load(); err != nil {
		t.Fatal(err)
	}

	changed := make(chan *Settings, 16)
	if !l.Watch(func(s *Settings, err error) {
		if err == nil {
			changed <- s
		}
	}) {
		t.Fatal("expected Watch to start")
	}

	if err := os.WriteFile(path, []byte("level = Error\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	timeout := time.After(5 * time.Second)
	for {
		select {
		case s := <-changed:
			if s.Log.Level == "Error" {
				return
			}
		case <-timeout:
			t.Fatal("expected a reload after the file changed")
		}
	}
}
