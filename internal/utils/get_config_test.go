package utils

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Cleanup(func() { config = Config{} })

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("DB_DRIVER: sqlite\nDB_SQLITE_PATH: diary.db\nRATE_LIMIT_MAX: \"25\"\n"), 0o600))

	require.NoError(t, LoadConfig(path))

	assert.Equal(t, "sqlite", GetConfig("DB_DRIVER"))
	assert.Equal(t, "diary.db", GetConfig("DB_SQLITE_PATH"))
	assert.Equal(t, 25, GetConfigInt("RATE_LIMIT_MAX", 10))
	assert.Equal(t, "", GetConfig("UNKNOWN_KEY"))
}

func TestLoadConfig_MissingFile(t *testing.T) {
	err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("DB_DRIVER: [sqlite\n"), 0o600))

	err := LoadConfig(path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "parse config")
}

func TestGetConfig_EnvironmentOverrides(t *testing.T) {
	t.Cleanup(func() { config = Config{} })
	config = Config{FixturesPrefix: "from-file"}

	assert.Equal(t, "from-file", GetConfig("FIXTURES_PREFIX"))

	t.Setenv("FIXTURES_PREFIX", "from-env")
	assert.Equal(t, "from-env", GetConfig("FIXTURES_PREFIX"))
}

func TestGetConfigInt_Fallback(t *testing.T) {
	t.Setenv("BCRYPT_COST", "")
	assert.Equal(t, 10, GetConfigInt("BCRYPT_COST", 10))

	t.Setenv("BCRYPT_COST", "strong")
	assert.Equal(t, 10, GetConfigInt("BCRYPT_COST", 10))

	t.Setenv("BCRYPT_COST", "4")
	assert.Equal(t, 4, GetConfigInt("BCRYPT_COST", 10))
}

func TestGetConfigOrDefault(t *testing.T) {
	t.Setenv("APP_PORT", "")
	assert.Equal(t, "8080", GetConfigOrDefault("APP_PORT", "8080"))
}
