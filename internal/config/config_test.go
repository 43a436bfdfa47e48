package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearServerEnv(t *testing.T) {
	for _, k := range []string{"PORT", "STORAGE_DRIVER", "DATABASE_URL", "SQLITE_PATH", "CORS_ALLOWED_ORIGIN"} {
		t.Setenv(k, "")
	}
}

func TestNewServerConfig_Defaults(t *testing.T) {
	clearServerEnv(t)

	cfg, err := NewServerConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.StorageDriver, "no DATABASE_URL means sqlite")
	assert.Equal(t, "meeting-mbti.db", cfg.SQLitePath)
	assert.Equal(t, "*", cfg.CORSAllowedOrigin)
}

func TestNewServerConfig_PostgresInferredFromURL(t *testing.T) {
	clearServerEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/mbti")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGIN", "https://app.example.com")

	cfg, err := NewServerConfig()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.StorageDriver)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "https://app.example.com", cfg.CORSAllowedOrigin)
}

func TestNewServerConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"bad port", map[string]string{"PORT": "http"}, "invalid PORT"},
		{"port out of range", map[string]string{"PORT": "70000"}, "PORT out of range"},
		{"postgres without url", map[string]string{"STORAGE_DRIVER": "postgres"}, "DATABASE_URL is required"},
		{"unknown driver", map[string]string{"STORAGE_DRIVER": "mongo"}, "unknown STORAGE_DRIVER"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearServerEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := NewServerConfig()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewServerConfig_DriverIsCaseInsensitive(t *testing.T) {
	clearServerEnv(t)
	t.Setenv("STORAGE_DRIVER", " SQLite ")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")

	cfg, err := NewServerConfig()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.StorageDriver)
	assert.Equal(t, "/tmp/x.db", cfg.SQLitePath)
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"port": 3000,
		"storage_driver": "sqlite",
		"sqlite_path": "data/mbti.db"
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "sqlite", cfg.StorageDriver)
	assert.Equal(t, "data/mbti.db", cfg.SQLitePath)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644))

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &ServerConfig{Port: 9000}
	defaults := ServerConfig{
		Port:          8080,
		StorageDriver: DriverPostgres,
		DatabaseURL:   "postgres://file",
		SQLitePath:    "file.db",
	}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, 9000, merged.Port, "set values win")
	assert.Equal(t, DriverPostgres, merged.StorageDriver)
	assert.Equal(t, "postgres://file", merged.DatabaseURL)
	assert.Equal(t, "file.db", merged.SQLitePath)
	assert.Empty(t, merged.CORSAllowedOrigin)

	require.NoError(t, merged.Validate())
	assert.Equal(t, "*", merged.CORSAllowedOrigin)
}

func TestFromEnv_LeavesDefaultsUnset(t *testing.T) {
	clearServerEnv(t)
	t.Setenv("SQLITE_PATH", "/tmp/env.db")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Port)
	assert.Empty(t, cfg.StorageDriver)
	assert.Equal(t, "/tmp/env.db", cfg.SQLitePath)

	file := ServerConfig{Port: 9090, SQLitePath: "/data/file.db"}
	merged := file.MergeWithDefaults(*cfg)
	require.NoError(t, merged.Validate())
	assert.Equal(t, 9090, merged.Port)
	assert.Equal(t, DriverSQLite, merged.StorageDriver)
	assert.Equal(t, "/data/file.db", merged.SQLitePath)
}

func TestFromEnv_InvalidPort(t *testing.T) {
	clearServerEnv(t)
	t.Setenv("PORT", "eighty")

	_, err := FromEnv()
	assert.Error(t, err)
}
