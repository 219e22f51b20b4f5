package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "MIGRATIONS_PATH", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
		"LOG_LEVEL", "OUTLIER_STRAT_LEVEL", "OUTLIER_EXCLUDE_ENDS", "BATCH_CONCURRENCY"} {
		t.Setenv(key, "")
	}

	assert.Equal(t, ":8080", ServerAddr())
	assert.Equal(t, "migrations", MigrationsPath())
	assert.Equal(t, 100.0, RateLimitRPS())
	assert.Equal(t, 20, RateLimitBurst())
	assert.Equal(t, "info", LogLevel())
	assert.Equal(t, 3, OutlierStratLevel())
	assert.False(t, OutlierExcludeEnds())
	assert.Equal(t, 4, BatchConcurrency())
}

func TestOutlierDefaults(t *testing.T) {
	t.Setenv("OUTLIER_STRAT_LEVEL", "2")
	t.Setenv("OUTLIER_EXCLUDE_ENDS", "true")
	assert.Equal(t, 2, OutlierStratLevel())
	assert.True(t, OutlierExcludeEnds())

	t.Setenv("OUTLIER_STRAT_LEVEL", "7")
	t.Setenv("OUTLIER_EXCLUDE_ENDS", "perhaps")
	assert.Equal(t, 3, OutlierStratLevel())
	assert.False(t, OutlierExcludeEnds())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("SERVER_PORT=9191\n"), 0o600))
	require.NoError(t, os.WriteFile(envFile+".secret", []byte("DATABASE_URL=postgres://secret\n"), 0o600))

	t.Setenv("STRATCHECK_ENV", envFile)
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DATABASE_URL", "")
	// godotenv does not override variables that are already set, even when empty.
	require.NoError(t, os.Unsetenv("SERVER_PORT"))
	require.NoError(t, os.Unsetenv("DATABASE_URL"))

	require.NoError(t, Load())
	assert.Equal(t, 9191, ServerPort())
	assert.Equal(t, "postgres://secret", DatabaseURL())
}
