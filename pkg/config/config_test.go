package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "default", cfg.TermName)
	assert.NotEmpty(t, cfg.CourseFile)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/semestra")
	t.Setenv("TERM_NAME", "fall-2026")
	t.Setenv("COURSE_FILE", "/tmp/courses.txt")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Equal(t, "postgres://localhost:5432/semestra", cfg.DatabaseURL)
	assert.Equal(t, "fall-2026", cfg.TermName)
	assert.Equal(t, "/tmp/courses.txt", cfg.CourseFile)
	assert.True(t, cfg.IsProduction())
}
