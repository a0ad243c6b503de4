package postgres

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/tracelog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ogurasousui/codex-company-registry/internal/platform/config"
)

func registryDatabaseConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Host:            "localhost",
		Port:            15432,
		User:            "registry",
		Password:        "secret",
		Name:            "registry",
		SSLMode:         "disable",
		MaxOpenConns:    12,
		MaxIdleConns:    3,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: 2 * time.Minute,
		ApplicationName: "company-registry",
	}
}

func TestBuildPoolConfig_AppliesLimits(t *testing.T) {
	t.Parallel()

	poolCfg, err := BuildPoolConfig(registryDatabaseConfig(), nil)
	if err != nil {
		t.Fatalf("BuildPoolConfig: %v", err)
	}

	if poolCfg.MaxConns != 12 || poolCfg.MinConns != 3 {
		t.Errorf("conns = %d/%d, want 12/3", poolCfg.MaxConns, poolCfg.MinConns)
	}
	if poolCfg.MaxConnLifetime != time.Hour || poolCfg.MaxConnIdleTime != 2*time.Minute {
		t.Errorf("lifetimes = %v/%v", poolCfg.MaxConnLifetime, poolCfg.MaxConnIdleTime)
	}
	if poolCfg.ConnConfig.Database != "registry" || poolCfg.ConnConfig.Port != 15432 {
		t.Errorf("conn target = %s:%d", poolCfg.ConnConfig.Database, poolCfg.ConnConfig.Port)
	}
	if got := poolCfg.ConnConfig.RuntimeParams["application_name"]; got != "company-registry" {
		t.Errorf("application_name = %q", got)
	}
	if poolCfg.ConnConfig.Tracer != nil {
		t.Error("tracer must be unset without query_log_level")
	}
}

func TestBuildPoolConfig_QueryTracer(t *testing.T) {
	t.Parallel()

	cfg := registryDatabaseConfig()
	cfg.QueryLogLevel = "debug"

	poolCfg, err := BuildPoolConfig(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("BuildPoolConfig: %v", err)
	}
	tracer, ok := poolCfg.ConnConfig.Tracer.(*tracelog.TraceLog)
	if !ok {
		t.Fatalf("tracer = %T, want *tracelog.TraceLog", poolCfg.ConnConfig.Tracer)
	}
	if tracer.LogLevel != tracelog.LogLevelDebug {
		t.Errorf("LogLevel = %v", tracer.LogLevel)
	}

	cfg.QueryLogLevel = "loud"
	if _, err := BuildPoolConfig(cfg, zap.NewNop()); err == nil {
		t.Fatal("expected error for unknown query log level")
	}
}

func TestZapTraceLogger_MapsLevels(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	l := zapTraceLogger{logger: zap.New(core)}

	l.Log(t.Context(), tracelog.LogLevelDebug, "Query", map[string]any{"sql": "select 1"})
	l.Log(t.Context(), tracelog.LogLevelError, "Query", map[string]any{"err": "boom"})

	entries := logs.AllUntimed()
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Level != zapcore.DebugLevel || entries[0].ContextMap()["sql"] != "select 1" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Level != zapcore.ErrorLevel {
		t.Errorf("second level = %v", entries[1].Level)
	}
}

func TestNewTransactionManagerFromConfig(t *testing.T) {
	t.Parallel()

	if _, err := NewTransactionManagerFromConfig(nil, config.DatabaseConfig{IsolationLevel: "chaos"}); err == nil {
		t.Fatal("expected error for unknown isolation level")
	}

	tm, err := NewTransactionManagerFromConfig(nil, config.DatabaseConfig{IsolationLevel: "serializable"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tm != nil {
		t.Fatal("expected nil manager without a pool")
	}
}
