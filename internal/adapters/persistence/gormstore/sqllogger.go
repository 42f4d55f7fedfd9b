package gormstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jsamuelsen/learning-journal/internal/platform/logging"
)

// sqlLogger routes gorm's logging into slog. Statements go out at trace
// level, slow ones at warn and failures at error. The request logger in
// ctx wins over the fallback so SQL lines carry request_id.
type sqlLogger struct {
	fallback *slog.Logger
	slow     time.Duration
	level    gormlogger.LogLevel
}

func newSQLLogger(fallback *slog.Logger, slow time.Duration) *sqlLogger {
	return &sqlLogger{fallback: fallback, slow: slow, level: gormlogger.Info}
}

func (l *sqlLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level

	return &clone
}

func (l *sqlLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Info {
		l.from(ctx).InfoContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *sqlLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Warn {
		l.from(ctx).WarnContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *sqlLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Error {
		l.from(ctx).ErrorContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *sqlLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	logger := l.from(ctx)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		sql, rows := fc()
		logger.ErrorContext(ctx, "query failed",
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
			slog.String("error", err.Error()),
		)
	case l.slow > 0 && elapsed > l.slow && l.level >= gormlogger.Warn:
		sql, rows := fc()
		logger.WarnContext(ctx, "slow query",
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
			slog.Duration("threshold", l.slow),
		)
	case l.level >= gormlogger.Info && logger.Enabled(ctx, logging.LevelTrace):
		sql, rows := fc()
		logger.Log(ctx, logging.LevelTrace, "query",
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
		)
	}
}

func (l *sqlLogger) from(ctx context.Context) *slog.Logger {
	if logger, ok := logging.Lookup(ctx); ok {
		return logger
	}

	return l.fallback
}
