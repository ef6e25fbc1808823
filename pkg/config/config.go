package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Redis      RedisConfig
	CORS       CORSConfig
	Log        LogConfig
	Seed       SeedConfig
	Attendance AttendanceConfig
	Assignment AssignmentConfig
	Gemini     GeminiConfig
	Planner    PlannerConfig
	Metrics    MetricsConfig
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// SeedConfig shapes the roster generated at process start.
type SeedConfig struct {
	StudentCount int
	// RandomSeed of zero derives the seed from the wall clock.
	RandomSeed int64
}

// AttendanceConfig tunes the live check-in countdown.
type AttendanceConfig struct {
	LiveSessionDuration time.Duration
	TickInterval        time.Duration
}

// AssignmentConfig controls how strictly assignment updates are checked.
type AssignmentConfig struct {
	StrictTransitions bool
}

// GeminiConfig configures the generative suggestion client.
type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// PlannerConfig governs suggestion jobs and result caching.
type PlannerConfig struct {
	Workers      int
	CacheEnabled bool
	CacheTTL     time.Duration
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isMissingFile(err) {
			return nil, err
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	studentCount := v.GetInt("SEED_STUDENT_COUNT")
	if studentCount <= 0 {
		studentCount = 105
	}
	cfg.Seed = SeedConfig{
		StudentCount: studentCount,
		RandomSeed:   v.GetInt64("SEED_RANDOM_SEED"),
	}

	cfg.Attendance = AttendanceConfig{
		LiveSessionDuration: parseDuration(v.GetString("ATTENDANCE_LIVE_SESSION_DURATION"), 10*time.Minute),
		TickInterval:        parseDuration(v.GetString("ATTENDANCE_TICK_INTERVAL"), time.Second),
	}

	cfg.Assignment = AssignmentConfig{
		StrictTransitions: v.GetBool("ASSIGNMENT_STRICT_TRANSITIONS"),
	}

	cfg.Gemini = GeminiConfig{
		APIKey:  v.GetString("GEMINI_API_KEY"),
		Model:   v.GetString("GEMINI_MODEL"),
		Timeout: parseDuration(v.GetString("GEMINI_TIMEOUT"), 30*time.Second),
	}

	workers := v.GetInt("PLANNER_WORKERS")
	if workers <= 0 {
		workers = 1
	}
	cfg.Planner = PlannerConfig{
		Workers:      workers,
		CacheEnabled: v.GetBool("PLANNER_CACHE_ENABLED"),
		CacheTTL:     parseDuration(v.GetString("PLANNER_CACHE_TTL"), time.Hour),
	}

	cfg.Metrics = MetricsConfig{
		Enabled: v.GetBool("ENABLE_METRICS"),
	}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("SEED_STUDENT_COUNT", 105)
	v.SetDefault("SEED_RANDOM_SEED", 0)

	v.SetDefault("ATTENDANCE_LIVE_SESSION_DURATION", "10m")
	v.SetDefault("ATTENDANCE_TICK_INTERVAL", "1s")
	v.SetDefault("ASSIGNMENT_STRICT_TRANSITIONS", false)

	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-3-flash-preview")
	v.SetDefault("GEMINI_TIMEOUT", "30s")

	v.SetDefault("PLANNER_WORKERS", 1)
	v.SetDefault("PLANNER_CACHE_ENABLED", false)
	v.SetDefault("PLANNER_CACHE_TTL", "1h")

	v.SetDefault("ENABLE_METRICS", true)
}

func isMissingFile(err error) bool {
	return strings.Contains(err.Error(), "no such file or directory")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
