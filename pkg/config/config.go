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
	Admin        AdminConfig
	CORS         CORSConfig
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
	Env          string `envconfig:"DRISHTI_APP_ENV" required:"true"`
	Port         string `envconfig:"DRISHTI_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"DRISHTI_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"DRISHTI_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"DRISHTI_DB_DSN"`
	Driver string `envconfig:"DRISHTI_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"DRISHTI_DB_HOST"`
	LegacyPort     int    `envconfig:"DRISHTI_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"DRISHTI_DB_USER"`
	LegacyPassword string `envconfig:"DRISHTI_DB_PASSWORD"`
	LegacyName     string `envconfig:"DRISHTI_DB_NAME"`
	LegacySSLMode  string `envconfig:"DRISHTI_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"DRISHTI_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"DRISHTI_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DRISHTI_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"DRISHTI_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DriverSQLite)
}

// AdminConfig holds the single shared admin identity. The values are
// deployment secrets compared by exact equality on every request.
type AdminConfig struct {
	Username string `envconfig:"DRISHTI_ADMIN_USERNAME" required:"true"`
	Password string `envconfig:"DRISHTI_ADMIN_PASSWORD" required:"true"`
}

// Match reports whether the supplied credential pair equals the configured
// secrets. Case-sensitive, exact byte match.
func (a AdminConfig) Match(username, password string) bool {
	return username == a.Username && password == a.Password
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"DRISHTI_CORS_ALLOWED_ORIGINS" default:"*"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"DRISHTI_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.IsSQLite() {
		return fmt.Errorf("%s is required for the sqlite driver", EnvDBDSN)
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
