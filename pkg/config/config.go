package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BILLPOINT_APP_ENV" required:"true"`
	Port         string `envconfig:"BILLPOINT_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"BILLPOINT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BILLPOINT_LOG_WARN_STACK" default:"false"`

	// DefaultUserID stands in for an authenticated identity until a real
	// auth layer exists. Requests may override it with X-User-Id.
	DefaultUserID string `envconfig:"BILLPOINT_DEFAULT_USER_ID" default:"u1"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"BILLPOINT_DB_DSN"`
	Driver string `envconfig:"BILLPOINT_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"BILLPOINT_DB_HOST"`
	LegacyPort     int    `envconfig:"BILLPOINT_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"BILLPOINT_DB_USER"`
	LegacyPassword string `envconfig:"BILLPOINT_DB_PASSWORD"`
	LegacyName     string `envconfig:"BILLPOINT_DB_NAME"`
	LegacySSLMode  string `envconfig:"BILLPOINT_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"BILLPOINT_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"BILLPOINT_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"BILLPOINT_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"BILLPOINT_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// RedisConfig is optional: when neither URL nor address is set the API runs
// without the idempotency replay cache.
type RedisConfig struct {
	URL          string        `envconfig:"BILLPOINT_REDIS_URL"`
	Address      string        `envconfig:"BILLPOINT_REDIS_ADDR"`
	Password     string        `envconfig:"BILLPOINT_REDIS_PASSWORD"`
	DB           int           `envconfig:"BILLPOINT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BILLPOINT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BILLPOINT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BILLPOINT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BILLPOINT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BILLPOINT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"BILLPOINT_AUTO_MIGRATE" default:"false"`
}

// ensureDSN assembles a postgres DSN from the legacy host/user/name
// variables when BILLPOINT_DB_DSN itself is not set.
func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	var missing []string
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}
	u := url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}
	if db.LegacySSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {db.LegacySSLMode}}.Encode()
	}

	db.DSN = u.String()
	return nil
}
