package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorPurple = "\033[35m"
	colorWhite  = "\033[37m"
)

type LogType string

const (
	TypeCommand LogType = "CMD"
	TypeDB      LogType = "DB"
	TypeSystem  LogType = "SYS"
	TypeError   LogType = "ERR"
	TypeGame    LogType = "GAME"
	TypeAI      LogType = "AI"
	TypeHTTP    LogType = "HTTP"
)

type CustomHandler struct {
	opts   *slog.HandlerOptions
	out    io.Writer
	mu     *sync.Mutex
	color  bool
	attrs  []slog.Attr
	groups []string
}

func NewHandler(out io.Writer, opts *slog.HandlerOptions, color bool) *CustomHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{Level: slog.LevelInfo}
	}
	return &CustomHandler{
		opts:  opts,
		out:   out,
		mu:    &sync.Mutex{},
		color: color,
	}
}

// Setup installs the default logger. format "json" uses slog's JSON
// handler, anything else the bracketed text format, colored only on a
// terminal without NO_COLOR.
func Setup(level slog.Level, format string, addSource bool) {
	opts := &slog.HandlerOptions{Level: level, AddSource: addSource}
	var h slog.Handler
	if strings.EqualFold(format, "json") {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = NewHandler(os.Stdout, opts, !color.NoColor)
	}
	slog.SetDefault(slog.New(h))
}

func (h *CustomHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

func (h *CustomHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), h.qualify(attrs)...)
	return &nh
}

func (h *CustomHandler) WithGroup(name string) slog.Handler {
	nh := *h
	nh.groups = append(append([]string{}, h.groups...), name)
	return &nh
}

func (h *CustomHandler) qualify(attrs []slog.Attr) []slog.Attr {
	if len(h.groups) == 0 {
		return attrs
	}
	prefix := strings.Join(h.groups, ".") + "."
	out := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = slog.Attr{Key: prefix + a.Key, Value: a.Value}
	}
	return out
}

func (h *CustomHandler) Handle(_ context.Context, r slog.Record) error {
	var levelColor, levelText string
	switch {
	case r.Level >= slog.LevelError:
		levelColor, levelText = colorRed, "ERROR"
	case r.Level >= slog.LevelWarn:
		levelColor, levelText = colorYellow, "WARN"
	case r.Level >= slog.LevelInfo:
		levelColor, levelText = colorGreen, "INFO"
	default:
		levelColor, levelText = colorPurple, "DEBUG"
	}

	recordAttrs := make([]slog.Attr, 0, r.NumAttrs())
	r.Attrs(func(a slog.Attr) bool {
		recordAttrs = append(recordAttrs, a)
		return true
	})
	all := append(append([]slog.Attr{}, h.attrs...), h.qualify(recordAttrs)...)

	logType := TypeSystem
	message := r.Message
	var b strings.Builder
	for _, a := range all {
		switch a.Key {
		case "type":
			logType = typeOf(a.Value.String())
		case "error":
			if r.Level >= slog.LevelError {
				message = fmt.Sprintf("%s: %v", message, a.Value)
				continue
			}
			fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
		default:
			fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
		}
	}

	timestamp := r.Time
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	reset, white := colorReset, colorWhite
	if !h.color {
		levelColor, reset, white = "", "", ""
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintf(h.out, "%s[Trunfo] [%s] [%s%s%s] [%s] %s%s%s\n",
		white,
		timestamp.Format("15:04:05"),
		levelColor,
		levelText,
		white,
		logType,
		message,
		b.String(),
		reset,
	)
	return err
}

func typeOf(v string) LogType {
	switch strings.ToLower(v) {
	case "cmd":
		return TypeCommand
	case "db":
		return TypeDB
	case "error":
		return TypeError
	case "game":
		return TypeGame
	case "ai":
		return TypeAI
	case "http":
		return TypeHTTP
	default:
		return TypeSystem
	}
}
