package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = New()

type Options struct {
	Filename   string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	Compress   bool
	Level      string
	Echo       bool // 同時印到 stdout，畫面開著的時候不要打開
}

type Logger struct {
	entry *logrus.Entry
	echo  bool
}

// New returns a logger that discards everything until Init is called.
func New() *Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &Logger{entry: logrus.NewEntry(l)}
}

func (l *Logger) Init(opts Options) {
	l.InitWithWriter(&lumberjack.Logger{
		Filename:   opts.Filename,
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAge,
		Compress:   opts.Compress,
	}, opts)
}

// InitWithWriter is Init with the rotating file replaced by w.
func (l *Logger) InitWithWriter(w io.Writer, opts Options) {
	base := l.entry.Logger
	base.SetFormatter(&logrus.JSONFormatter{})
	base.SetOutput(w)
	l.SetLevel(opts.Level)
	l.echo = opts.Echo
}

// SetLevel accepts Trace, Debug, Info, Warn, Error and Fatal; anything else means Debug.
func (l *Logger) SetLevel(level string) {
	l.entry.Logger.SetLevel(ParseLevel(level))
}

func (l *Logger) Level() logrus.Level {
	return l.entry.Logger.GetLevel()
}

func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {

	case "trace":
		return logrus.TraceLevel

	case "info":
		return logrus.InfoLevel

	case "warn":
		return logrus.WarnLevel

	case "error":
		return logrus.ErrorLevel

	case "fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

// WithSession tags every later entry with the session id.
func (l *Logger) WithSession(id string) {
	l.entry = l.entry.WithField("session", id)
}

func (l *Logger) WithFields(fields logrus.Fields) *logrus.Entry {
	return l.entry.WithFields(fields)
}

func (l *Logger) Info(message string) {
	l.entry.Info(message)
	l.print("Info:", message)
}

func (l *Logger) Error(message string) {
	l.entry.Error(message)
	l.print("Error:", message)
}

func (l *Logger) Debug(message string) {
	l.entry.Debug(message)
	l.print("Debug:", message)
}

func (l *Logger) Warn(message string) {
	l.entry.Warn(message)
	l.print("Warn:", message)
}

func (l *Logger) Fatal(message string) {
	l.print("Fatal:", message)
	l.entry.Fatal(message)
}

func (l *Logger) print(prefix, message string) {
	if l.echo {
		fmt.Println(prefix, message)
	}
}
