package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Security SecurityConfig
	Analysis AnalysisConfig
}

type AppConfig struct {
	Port           string
	Env            string
	LogLevel       string
	RequestTimeout time.Duration
	CORSOrigins    []string
	TrustProxy     bool
}

type DBConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	AutoMigrate bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	Issuer        string
	SessionExpiry time.Duration
}

type SecurityConfig struct {
	BcryptCost        int
	SignInRateLimit   int
	SignInRateWindow  time.Duration
	RateLimiterPrefix string
}

type AnalysisConfig struct {
	BaseURL string
	Timeout time.Duration
}

// LoadConfig reads .env (optional) and the process environment.
func LoadConfig() (*Config, error) {
	return Load(".env")
}

// Load reads the given env file if it exists, then overlays the environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	config := &Config{
		App: AppConfig{
			Port:           v.GetString("APP_PORT"),
			Env:            v.GetString("APP_ENV"),
			LogLevel:       v.GetString("LOG_LEVEL"),
			RequestTimeout: parseDuration(v, "APP_REQUEST_TIMEOUT", 10*time.Second),
			CORSOrigins:    splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			TrustProxy:     v.GetBool("TRUST_PROXY"),
		},
		DB: DBConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			Name:        v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSLMODE"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        v.GetString("JWT_SECRET"),
			Issuer:        v.GetString("JWT_ISSUER"),
			SessionExpiry: parseDuration(v, "JWT_SESSION_EXPIRY", 30*24*time.Hour),
		},
		Security: SecurityConfig{
			BcryptCost:        v.GetInt("BCRYPT_COST"),
			SignInRateLimit:   v.GetInt("RATE_LIMIT_SIGNIN"),
			SignInRateWindow:  parseDuration(v, "RATE_LIMIT_SIGNIN_WINDOW", time.Minute),
			RateLimiterPrefix: v.GetString("RATE_LIMIT_PREFIX"),
		},
		Analysis: AnalysisConfig{
			BaseURL: v.GetString("ANALYSIS_BASE_URL"),
			Timeout: parseDuration(v, "ANALYSIS_TIMEOUT", 5*time.Second),
		},
	}

	if config.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("JWT_ISSUER", "health-records")
	v.SetDefault("BCRYPT_COST", 12)
	v.SetDefault("RATE_LIMIT_SIGNIN", 10)
	v.SetDefault("RATE_LIMIT_PREFIX", "healthrecords:ratelimit")
}

func parseDuration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
