package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

const (
	defaultPort              = "8080"
	defaultJWTSecret         = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTExpiry         = time.Hour
	defaultJWTIssuer         = "finance-assistant-app"
	defaultMigrationsPath    = "file://migrations"
	defaultLoginRateLimit    = "5-M"
	defaultGptCreateInterval = 500 * time.Millisecond
)

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	JWTSecret          string
	JWTExpiryDuration  time.Duration
	JWTIssuer          string
	MigrationsPath     string
	CORSAllowedOrigins []string

	// LoginRateLimit is applied per client IP to the login endpoint.
	LoginRateLimit limiter.Rate
	// GptCreateRateLimit allows one GPT creation per period per client IP.
	GptCreateRateLimit limiter.Rate
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", defaultJWTExpiry.String())
	v.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	v.SetDefault("MIGRATIONS_PATH", defaultMigrationsPath)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("LOGIN_RATE_LIMIT", defaultLoginRateLimit)
	v.SetDefault("GPT_CREATE_RATE_LIMIT", defaultGptCreateInterval.String())

	// Environment variables override the defaults and the .env values.
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:    v.GetString("PGSQL_URL"),
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		JWTIssuer:      v.GetString("JWT_ISSUER"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = defaultJWTIssuer
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = defaultMigrationsPath
	}

	// Load JWT Expiry Duration (e.g., "60m", "1h")
	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = defaultJWTExpiry
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	// Login limit uses the limiter format ("<limit>-<S|M|H|D>"), e.g. "5-M".
	loginRateStr := v.GetString("LOGIN_RATE_LIMIT")
	loginRate, err := limiter.NewRateFromFormatted(loginRateStr)
	if err != nil {
		loginRate, _ = limiter.NewRateFromFormatted(defaultLoginRateLimit)
		log.Printf("Warning: Invalid value for LOGIN_RATE_LIMIT ('%s'). Defaulting to %s.\n", loginRateStr, defaultLoginRateLimit)
	}
	cfg.LoginRateLimit = loginRate

	// GPT creation is throttled to one request per interval.
	gptIntervalStr := v.GetString("GPT_CREATE_RATE_LIMIT")
	gptInterval, err := time.ParseDuration(gptIntervalStr)
	if err != nil || gptInterval <= 0 {
		gptInterval = defaultGptCreateInterval
		log.Printf("Warning: Invalid value for GPT_CREATE_RATE_LIMIT ('%s'). Defaulting to %s.\n", gptIntervalStr, gptInterval)
	}
	cfg.GptCreateRateLimit = limiter.Rate{Period: gptInterval, Limit: 1}

	return cfg, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
