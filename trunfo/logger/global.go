package logger

import (
	"context"
	"log/slog"
	"time"
)

func emit(level slog.Level, kind, msg string, attrs []any) {
	slog.Default().Log(context.Background(), level, msg, append([]any{slog.String("type", kind)}, attrs...)...)
}

// LogCommand records the outcome of a CLI command started at start.
func LogCommand(name string, start time.Time, err error) {
	attrs := []any{slog.String("command", name), slog.Duration("took", time.Since(start))}
	if err != nil {
		emit(slog.LevelError, "cmd", "Command failed", append(attrs, slog.Any("error", err)))
		return
	}
	emit(slog.LevelInfo, "cmd", "Command finished", attrs)
}

// LogQuery records one store operation. Successes are DEBUG so hot paths
// stay quiet at the default level.
func LogQuery(op string, start time.Time, err error, attrs ...any) {
	attrs = append([]any{slog.String("op", op), slog.Duration("took", time.Since(start))}, attrs...)
	if err != nil {
		emit(slog.LevelError, "db", "Query failed", append(attrs, slog.Any("error", err)))
		return
	}
	emit(slog.LevelDebug, "db", "Query executed", attrs)
}

func LogSystem(msg string, attrs ...any) {
	emit(slog.LevelInfo, "sys", msg, attrs)
}

func LogGame(msg string, attrs ...any) {
	emit(slog.LevelInfo, "game", msg, attrs)
}

func LogError(msg string, err error, attrs ...any) {
	emit(slog.LevelError, "error", msg, append([]any{slog.Any("error", err)}, attrs...))
}
