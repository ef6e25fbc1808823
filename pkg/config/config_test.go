package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 105, cfg.Seed.StudentCount)
	assert.Equal(t, 10*time.Minute, cfg.Attendance.LiveSessionDuration)
	assert.Equal(t, time.Second, cfg.Attendance.TickInterval)
	assert.False(t, cfg.Assignment.StrictTransitions)
	assert.Equal(t, "gemini-3-flash-preview", cfg.Gemini.Model)
	assert.Equal(t, 1, cfg.Planner.Workers)
	assert.Equal(t, time.Hour, cfg.Planner.CacheTTL)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("SEED_STUDENT_COUNT", 3)
	v.Set("ATTENDANCE_LIVE_SESSION_DURATION", "90s")
	v.Set("ASSIGNMENT_STRICT_TRANSITIONS", true)
	v.Set("PLANNER_WORKERS", 0)
	v.Set("ALLOWED_ORIGINS", "http://a.test, ,http://b.test")

	cfg := fromViper(v)

	assert.Equal(t, 3, cfg.Seed.StudentCount)
	assert.Equal(t, 90*time.Second, cfg.Attendance.LiveSessionDuration)
	assert.True(t, cfg.Assignment.StrictTransitions)
	assert.Equal(t, 1, cfg.Planner.Workers)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
}

func TestParseDurationFallback(t *testing.T) {
	assert.Equal(t, time.Minute, parseDuration("", time.Minute))
	assert.Equal(t, time.Minute, parseDuration("soon", time.Minute))
	assert.Equal(t, 2*time.Second, parseDuration("2s", time.Minute))
}
