package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/tracelog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapTraceLogger は pgx のクエリトレースを zap に書き出します。
type zapTraceLogger struct {
	logger *zap.Logger
}

func (l zapTraceLogger) Log(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	fields := make([]zap.Field, 0, len(data))
	for k, v := range data {
		fields = append(fields, zap.Any(k, v))
	}
	l.logger.Log(zapLevel(level), msg, fields...)
}

func zapLevel(level tracelog.LogLevel) zapcore.Level {
	switch level {
	case tracelog.LogLevelTrace, tracelog.LogLevelDebug:
		return zapcore.DebugLevel
	case tracelog.LogLevelInfo:
		return zapcore.InfoLevel
	case tracelog.LogLevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// newTracer は query_log_level に応じたトレーサーを返します。"none" または空の場合は nil です。
func newTracer(level string, logger *zap.Logger) (*tracelog.TraceLog, error) {
	if level == "" || logger == nil {
		return nil, nil
	}
	parsed, err := tracelog.LogLevelFromString(level)
	if err != nil {
		return nil, err
	}
	if parsed == tracelog.LogLevelNone {
		return nil, nil
	}
	return &tracelog.TraceLog{Logger: zapTraceLogger{logger: logger}, LogLevel: parsed}, nil
}
