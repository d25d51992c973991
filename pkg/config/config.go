package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is applied by envconfig to every variable below.
const EnvPrefix = "girlieshub"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Admin        AdminConfig
	Password     PasswordConfig
	RateLimit    RateLimitConfig
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
	Env          string `envconfig:"GIRLIESHUB_APP_ENV" required:"true"`
	Port         string `envconfig:"GIRLIESHUB_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"GIRLIESHUB_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GIRLIESHUB_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"GIRLIESHUB_DB_DSN"`
	Driver string `envconfig:"GIRLIESHUB_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"GIRLIESHUB_DB_HOST"`
	Port     int    `envconfig:"GIRLIESHUB_DB_PORT" default:"5432"`
	User     string `envconfig:"GIRLIESHUB_DB_USER"`
	Password string `envconfig:"GIRLIESHUB_DB_PASSWORD"`
	Name     string `envconfig:"GIRLIESHUB_DB_NAME"`
	SSLMode  string `envconfig:"GIRLIESHUB_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"GIRLIESHUB_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"GIRLIESHUB_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"GIRLIESHUB_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"GIRLIESHUB_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"GIRLIESHUB_REDIS_URL" required:"true"`
	Address      string        `envconfig:"GIRLIESHUB_REDIS_ADDR"`
	Password     string        `envconfig:"GIRLIESHUB_REDIS_PASSWORD"`
	DB           int           `envconfig:"GIRLIESHUB_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"GIRLIESHUB_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"GIRLIESHUB_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"GIRLIESHUB_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"GIRLIESHUB_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"GIRLIESHUB_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// AdminConfig drives the single-password back-office login.
type AdminConfig struct {
	PasswordHash      string `envconfig:"GIRLIESHUB_ADMIN_PASSWORD_HASH"`
	SessionTTLMinutes int    `envconfig:"GIRLIESHUB_ADMIN_SESSION_TTL_MINUTES" default:"720"`
}

// SessionTTL returns the admin session lifetime.
func (a AdminConfig) SessionTTL() time.Duration {
	if a.SessionTTLMinutes <= 0 {
		return 12 * time.Hour
	}
	return time.Duration(a.SessionTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"GIRLIESHUB_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"GIRLIESHUB_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"GIRLIESHUB_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"GIRLIESHUB_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"GIRLIESHUB_ARGON_KEY_LEN" default:"32"`
}

type RateLimitConfig struct {
	LoginWindow  time.Duration `envconfig:"GIRLIESHUB_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginIPLimit int           `envconfig:"GIRLIESHUB_RATE_LIMIT_LOGIN_IP_LIMIT" default:"10"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"GIRLIESHUB_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	parts := map[string]string{
		"GIRLIESHUB_DB_HOST": db.Host,
		"GIRLIESHUB_DB_USER": db.User,
		"GIRLIESHUB_DB_NAME": db.Name,
	}
	for _, key := range []string{"GIRLIESHUB_DB_HOST", "GIRLIESHUB_DB_USER", "GIRLIESHUB_DB_NAME"} {
		if parts[key] == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either GIRLIESHUB_DB_DSN or %s are required", strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
