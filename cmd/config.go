package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"retail/internal/adapters/out/postgres"
	"retail/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const DefaultConfigFile = "database_config.json"

type Config struct {
	HTTPPort    string
	Debug       bool
	LogLevel    string
	CORSOrigins []string

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string
	TokenTTL  time.Duration

	Jobs      jobs.Schedules
	Passwords postgres.DefaultPasswords
}

func (c Config) Database() postgres.ConnectionParams {
	return postgres.ConnectionParams{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Database: c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

// retailDefaults are the keys of the "retail" file section. AutomaticEnv
// would look them up as RETAIL_RETAIL_*, so each one is bound to its
// RETAIL_<KEY> name explicitly.
var retailDefaults = []struct {
	key   string
	value any
}{
	{"http_port", "8080"},
	{"debug", false},
	{"log_level", "info"},
	{"cors_origins", []string{"*"}},
	{"jwt_secret", ""},
	{"token_ttl", "12h"},
	{"jobs.low_stock", "0 0 * * * *"},
	{"jobs.delivery_backlog", "0 */5 * * * *"},
	{"jobs.max_pending_wait", "2h"},
	{"passwords.admin", "admin123"},
	{"passwords.cashier", "cashier123"},
	{"passwords.storekeeper", "storekeeper123"},
}

// retailEnvName maps "jobs.low_stock" to RETAIL_JOBS_LOW_STOCK.
func retailEnvName(key string) string {
	return "RETAIL_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// LoadConfig reads the connection file shared with the desktop client and
// the optional "retail" section next to it. RETAIL_* environment variables,
// also loaded from .env, win over the file: RETAIL_HOST, RETAIL_JWT_SECRET,
// RETAIL_JOBS_LOW_STOCK and so on.
func LoadConfig(path string) (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetEnvPrefix("RETAIL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("host", "localhost")
	v.SetDefault("port", 5432)
	v.SetDefault("user", "postgres")
	v.SetDefault("password", "postgres")
	v.SetDefault("database", "appliance_store")
	v.SetDefault("sslmode", "disable")
	for _, d := range retailDefaults {
		v.SetDefault("retail."+d.key, d.value)
		if err := v.BindEnv("retail."+d.key, retailEnvName(d.key)); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", d.key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read %s: %w", path, err)
		}
	}

	config := Config{
		HTTPPort:    v.GetString("retail.http_port"),
		Debug:       v.GetBool("retail.debug"),
		LogLevel:    v.GetString("retail.log_level"),
		CORSOrigins: v.GetStringSlice("retail.cors_origins"),
		DBHost:      v.GetString("host"),
		DBPort:      v.GetInt("port"),
		DBUser:      v.GetString("user"),
		DBPassword:  v.GetString("password"),
		DBName:      v.GetString("database"),
		DBSslMode:   v.GetString("sslmode"),
		JWTSecret:   v.GetString("retail.jwt_secret"),
		TokenTTL:    v.GetDuration("retail.token_ttl"),
		Jobs: jobs.Schedules{
			LowStock:        v.GetString("retail.jobs.low_stock"),
			DeliveryBacklog: v.GetString("retail.jobs.delivery_backlog"),
			MaxPendingWait:  v.GetDuration("retail.jobs.max_pending_wait"),
		},
		Passwords: postgres.DefaultPasswords{
			Admin:       v.GetString("retail.passwords.admin"),
			Cashier:     v.GetString("retail.passwords.cashier"),
			Storekeeper: v.GetString("retail.passwords.storekeeper"),
		},
	}
	if config.DBPort <= 0 {
		return Config{}, fmt.Errorf("database port must be positive, got %d", config.DBPort)
	}
	return config, nil
}

// NewLogger builds the JSON application logger. Unknown levels fall back to
// info.
func NewLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
