package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	TLS       TLSConfig
	JWT       JWTConfig
	Password  PasswordConfig
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
	Env       string `envconfig:"MYTHRILMERCH_APP_ENV" default:"dev"`
	Port      string `envconfig:"MYTHRILMERCH_APP_PORT" default:"5000"`
	LogLevel  string `envconfig:"MYTHRILMERCH_LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"MYTHRILMERCH_LOG_FORMAT" default:"json"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"MYTHRILMERCH_DB_DSN"`
	Driver string `envconfig:"MYTHRILMERCH_DB_DRIVER" default:"postgres"`

	// Legacy split-variable form kept for parity with the original deploy
	// scripts (DB_HOST, DB_NAME, ...).
	LegacyHost     string `envconfig:"MYTHRILMERCH_DB_HOST"`
	LegacyPort     int    `envconfig:"MYTHRILMERCH_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"MYTHRILMERCH_DB_USER"`
	LegacyPassword string `envconfig:"MYTHRILMERCH_DB_PASSWORD"`
	LegacyName     string `envconfig:"MYTHRILMERCH_DB_NAME"`
	LegacySSLMode  string `envconfig:"MYTHRILMERCH_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MYTHRILMERCH_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MYTHRILMERCH_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MYTHRILMERCH_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MYTHRILMERCH_DB_CONN_MAX_IDLE_TIME" default:"10m"`

	// QueryTimeout bounds every storage round-trip; on expiry the operation
	// fails with a dependency error instead of hanging the caller.
	QueryTimeout time.Duration `envconfig:"MYTHRILMERCH_DB_QUERY_TIMEOUT" default:"5s"`

	UseSQLite   bool   `envconfig:"MYTHRILMERCH_DB_USE_SQLITE" default:"false"`
	SQLitePath  string `envconfig:"MYTHRILMERCH_DB_SQLITE_PATH" default:"mythrilmerch.db"`
	AutoMigrate bool   `envconfig:"MYTHRILMERCH_DB_AUTO_MIGRATE" default:"false"`
}

type RedisConfig struct {
	URL          string        `envconfig:"MYTHRILMERCH_REDIS_URL"`
	Address      string        `envconfig:"MYTHRILMERCH_REDIS_ADDR"`
	Password     string        `envconfig:"MYTHRILMERCH_REDIS_PASSWORD"`
	DB           int           `envconfig:"MYTHRILMERCH_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MYTHRILMERCH_REDIS_POOL_SIZE" default:"10"`
	DialTimeout  time.Duration `envconfig:"MYTHRILMERCH_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MYTHRILMERCH_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MYTHRILMERCH_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint was configured at all. When it
// wasn't, rate limiting falls back to the in-process counter store.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type CORSConfig struct {
	// AllowedOrigins is the comma-separated origin allow-list for mutating
	// endpoints. Empty means local development defaults.
	AllowedOrigins []string `envconfig:"MYTHRILMERCH_CORS_ALLOWED_ORIGINS"`
}

type RateLimitConfig struct {
	PerMinute int `envconfig:"MYTHRILMERCH_RATE_LIMIT_PER_MINUTE" default:"60"`
	PerHour   int `envconfig:"MYTHRILMERCH_RATE_LIMIT_PER_HOUR" default:"1000"`
	PerDay    int `envconfig:"MYTHRILMERCH_RATE_LIMIT_PER_DAY" default:"10000"`
}

type TLSConfig struct {
	CertFile string `envconfig:"MYTHRILMERCH_SSL_CERT_FILE"`
	KeyFile  string `envconfig:"MYTHRILMERCH_SSL_KEY_FILE"`
}

// Enabled reports whether the server should terminate TLS itself.
func (t TLSConfig) Enabled() bool {
	return t.CertFile != "" && t.KeyFile != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"MYTHRILMERCH_JWT_SECRET"`
	Issuer            string `envconfig:"MYTHRILMERCH_JWT_ISSUER" default:"mythrilmerch"`
	ExpirationMinutes int    `envconfig:"MYTHRILMERCH_JWT_EXPIRATION_MINUTES" default:"60"`
}

// AccessTokenTTL returns the access token TTL configured in minutes.
func (j JWTConfig) AccessTokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"MYTHRILMERCH_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"MYTHRILMERCH_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"MYTHRILMERCH_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"MYTHRILMERCH_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"MYTHRILMERCH_ARGON_KEY_LEN" default:"32"`
}

func (db *DBConfig) ensureDSN() error {
	if db.UseSQLite {
		return nil
	}
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
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

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
