package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ogurasousui/codex-company-registry/internal/core/retry"
)

// ストアの実装種別です。
const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

const (
	defaultHTTPListenAddr  = ":8080"
	defaultShutdownTimeout = 10 * time.Second
	defaultLogLevel        = "info"
	defaultKafkaTopic      = "registry.events"
)

// 環境変数による上書きです。
const (
	EnvConfigPath       = "CONFIG_PATH"
	EnvDatabasePassword = "DATABASE_PASSWORD"
	EnvStoreDriver      = "STORE_DRIVER"
	DefaultConfigPath   = "assets/local.yaml"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	HTTP     HTTPConfig     `yaml:"http"`
	Store    StoreConfig    `yaml:"store"`
	Database DatabaseConfig `yaml:"database"`
	Retry    RetryConfig    `yaml:"retry"`
	Log      LogConfig      `yaml:"log"`
	Kafka    KafkaConfig    `yaml:"kafka"`
}

// ServerConfig は gRPC サーバーに関する設定です。
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// HTTPConfig は REST API サーバーに関する設定です。
type HTTPConfig struct {
	ListenAddr         string        `yaml:"listen_addr"`
	AllowedOrigins     []string      `yaml:"allowed_origins"`
	ReadTimeout        time.Duration `yaml:"-"`
	WriteTimeout       time.Duration `yaml:"-"`
	ShutdownTimeout    time.Duration `yaml:"-"`
	ReadTimeoutRaw     string        `yaml:"read_timeout"`
	WriteTimeoutRaw    string        `yaml:"write_timeout"`
	ShutdownTimeoutRaw string        `yaml:"shutdown_timeout"`
}

// StoreConfig は永続化先の設定です。
type StoreConfig struct {
	Driver string `yaml:"driver"`
}

// DatabaseConfig は PostgreSQL 接続に関する設定です。
type DatabaseConfig struct {
	Host               string        `yaml:"host"`
	Port               int           `yaml:"port"`
	User               string        `yaml:"user"`
	Password           string        `yaml:"password"`
	Name               string        `yaml:"name"`
	SSLMode            string        `yaml:"ssl_mode"`
	MaxOpenConns       int           `yaml:"max_open_conns"`
	MaxIdleConns       int           `yaml:"max_idle_conns"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxIdleTime    time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime"`
	ConnMaxIdleTimeRaw string        `yaml:"conn_max_idle_time"`
	ApplicationName    string        `yaml:"application_name"`
	IsolationLevel     string        `yaml:"isolation_level"`
	// QueryLogLevel は pgx のクエリトレースの出力レベルです (trace, debug, info, warn, error, none)。
	QueryLogLevel      string        `yaml:"query_log_level"`
}

// RetryConfig はストア操作の再試行設定です。未指定の項目は既定値になります。
type RetryConfig struct {
	MaxRetries   *int   `yaml:"max_retries"`
	BaseDelayRaw string `yaml:"base_delay"`
	policy       retry.Policy
}

// LogConfig はロガーの設定です。FilePath を指定するとローテーション付きでファイルにも出力します。
type LogConfig struct {
	Level      string `yaml:"level"`
	FilePath   string `yaml:"file_path"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// KafkaConfig はドメインイベント発行の設定です。
type KafkaConfig struct {
	Enabled         bool          `yaml:"enabled"`
	Brokers         []string      `yaml:"brokers"`
	Topic           string        `yaml:"topic"`
	WriteTimeout    time.Duration `yaml:"-"`
	WriteTimeoutRaw string        `yaml:"write_timeout"`
}

// LoadDotEnv は .env を環境変数に読み込みます。ファイルが存在しない場合は何もしません。
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: load %s: %w", p, err)
		}
	}
	return nil
}

// PathFromEnv は CONFIG_PATH が設定されていればその値を、なければ既定のパスを返します。
func PathFromEnv() string {
	if v := os.Getenv(EnvConfigPath); v != "" {
		return v
	}
	return DefaultConfigPath
}

// Load は指定されたパスから設定ファイルを読み込みます。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDatabasePassword); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv(EnvStoreDriver); v != "" {
		c.Store.Driver = v
	}
}

func (c *Config) validateAndNormalize() error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("config: server.listen_addr must be set")
	}

	if err := c.HTTP.validateAndNormalize(); err != nil {
		return err
	}

	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	switch c.Store.Driver {
	case "":
		c.Store.Driver = StoreDriverMemory
	case StoreDriverMemory:
	case StoreDriverPostgres:
		if err := c.Database.validateAndNormalize(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("config: store.driver must be %q or %q, got %q", StoreDriverMemory, StoreDriverPostgres, c.Store.Driver)
	}

	if err := c.Retry.validateAndNormalize(); err != nil {
		return err
	}

	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}

	return c.Kafka.validateAndNormalize()
}

func (h *HTTPConfig) validateAndNormalize() error {
	if h.ListenAddr == "" {
		h.ListenAddr = defaultHTTPListenAddr
	}

	var err error
	if h.ReadTimeout, err = parseDurationAllowEmpty(h.ReadTimeoutRaw); err != nil {
		return fmt.Errorf("config: http.read_timeout: %w", err)
	}
	if h.WriteTimeout, err = parseDurationAllowEmpty(h.WriteTimeoutRaw); err != nil {
		return fmt.Errorf("config: http.write_timeout: %w", err)
	}
	if h.ShutdownTimeout, err = parseDurationAllowEmpty(h.ShutdownTimeoutRaw); err != nil {
		return fmt.Errorf("config: http.shutdown_timeout: %w", err)
	}
	if h.ShutdownTimeout == 0 {
		h.ShutdownTimeout = defaultShutdownTimeout
	}
	return nil
}

func (d *DatabaseConfig) validateAndNormalize() error {
	if d.Host == "" {
		return fmt.Errorf("config: database.host must be set")
	}
	if d.Port == 0 {
		return fmt.Errorf("config: database.port must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: database.user must be set")
	}
	if d.Password == "" {
		return fmt.Errorf("config: database.password must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: database.name must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}

	lifetime, err := parseDurationAllowEmpty(d.ConnMaxLifetimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_lifetime: %w", err)
	}
	d.ConnMaxLifetime = lifetime

	idleTime, err := parseDurationAllowEmpty(d.ConnMaxIdleTimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_idle_time: %w", err)
	}
	d.ConnMaxIdleTime = idleTime

	d.QueryLogLevel = strings.ToLower(strings.TrimSpace(d.QueryLogLevel))
	return nil
}

func (r *RetryConfig) validateAndNormalize() error {
	policy := retry.DefaultPolicy()
	if r.MaxRetries != nil {
		if *r.MaxRetries < 0 || *r.MaxRetries > retry.MaxRetriesLimit {
			return fmt.Errorf("config: retry.max_retries must be between 0 and %d, got %d", retry.MaxRetriesLimit, *r.MaxRetries)
		}
		policy.MaxRetries = *r.MaxRetries
	}

	delay, err := parseDurationAllowEmpty(r.BaseDelayRaw)
	if err != nil {
		return fmt.Errorf("config: retry.base_delay: %w", err)
	}
	if delay > 0 {
		policy.BaseDelay = delay
	}

	r.policy = policy
	return nil
}

// Policy は再試行ポリシーを返します。
func (r RetryConfig) Policy() retry.Policy {
	if r.policy.BaseDelay == 0 {
		return retry.DefaultPolicy()
	}
	return r.policy
}

func (k *KafkaConfig) validateAndNormalize() error {
	timeout, err := parseDurationAllowEmpty(k.WriteTimeoutRaw)
	if err != nil {
		return fmt.Errorf("config: kafka.write_timeout: %w", err)
	}
	k.WriteTimeout = timeout

	if !k.Enabled {
		return nil
	}
	if len(k.Brokers) == 0 {
		return fmt.Errorf("config: kafka.brokers must be set when kafka is enabled")
	}
	if k.Topic == "" {
		k.Topic = defaultKafkaTopic
	}
	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}

// DSN は pgx 用の接続文字列を返します。認証情報はエスケープされます。
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}
