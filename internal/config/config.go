package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port            string   `mapstructure:"PORT"`
	Env             string   `mapstructure:"ENV"`
	DatabaseURL     string   `mapstructure:"DATABASE_URL"`
	DBMaxConns      int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns      int32    `mapstructure:"DB_MIN_CONNS"`
	JWTSecret       string   `mapstructure:"JWT_SECRET"`
	TokenTTLHours   int      `mapstructure:"TOKEN_TTL_HOURS"`
	CORSOrigins     []string `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS    float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst  int      `mapstructure:"RATE_LIMIT_BURST"`
	AIProvider      string   `mapstructure:"AI_PROVIDER"`
	AIBaseURL       string   `mapstructure:"AI_BASE_URL"`
	AIAPIKey        string   `mapstructure:"AI_API_KEY"`
	AIPrimaryModel  string   `mapstructure:"AI_PRIMARY_MODEL"`
	AIFallbackModel string   `mapstructure:"AI_FALLBACK_MODEL"`
	AITimeoutSecs   int      `mapstructure:"AI_TIMEOUT_SECONDS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("TOKEN_TTL_HOURS", 24)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 50)
	v.SetDefault("RATE_LIMIT_BURST", 100)
	v.SetDefault("AI_PROVIDER", "openai")
	v.SetDefault("AI_BASE_URL", "https://api.openai.com/v1")
	v.SetDefault("AI_PRIMARY_MODEL", "gpt-4o-mini")
	v.SetDefault("AI_FALLBACK_MODEL", "gpt-3.5-turbo")
	v.SetDefault("AI_TIMEOUT_SECONDS", 30)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("JWT_SECRET")
	v.BindEnv("TOKEN_TTL_HOURS")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")
	v.BindEnv("AI_PROVIDER")
	v.BindEnv("AI_BASE_URL")
	v.BindEnv("AI_API_KEY")
	v.BindEnv("AI_PRIMARY_MODEL")
	v.BindEnv("AI_FALLBACK_MODEL")
	v.BindEnv("AI_TIMEOUT_SECONDS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if cfg.IsDev() && cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is not set; using an insecure development secret.")
		log.Println("WARNING: Set JWT_SECRET before running outside development.")
		cfg.JWTSecret = DevJWTSecret
	}

	return cfg, nil
}

// DevJWTSecret is the signing secret substituted in development when
// JWT_SECRET is unset. Validate rejects it outside development.
const DevJWTSecret = "carelink-dev-secret"

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate checks that the configuration is safe to run. Outside development
// a real JWT_SECRET must be provided, and the assistant provider must be one
// of the supported values.
func (c *Config) Validate() error {
	if !c.IsDev() && (c.JWTSecret == "" || c.JWTSecret == DevJWTSecret) {
		return fmt.Errorf("JWT_SECRET is required when ENV is %q", c.Env)
	}

	switch c.AIProvider {
	case "openai", "gemini", "disabled":
	default:
		return fmt.Errorf("AI_PROVIDER must be \"openai\", \"gemini\", or \"disabled\", got %q", c.AIProvider)
	}

	if c.AIProvider == "openai" && c.AIBaseURL == "" {
		return fmt.Errorf("AI_BASE_URL is required when AI_PROVIDER is \"openai\"")
	}

	if c.TokenTTLHours <= 0 {
		return fmt.Errorf("TOKEN_TTL_HOURS must be positive, got %d", c.TokenTTLHours)
	}

	return nil
}
