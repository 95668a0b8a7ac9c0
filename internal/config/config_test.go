package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nikolayk812/storefront/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		env       map[string]string
		check     func(t *testing.T, cfg *config.Config)
		wantError string
	}{
		{
			name: "defaults: ok",
			body: "environment: production\n",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "production", cfg.Environment)
				assert.Equal(t, ":8080", cfg.HTTP.Addr)
				assert.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
				assert.False(t, cfg.HTTP.TrustProxyHeaders)
				assert.Equal(t, config.StorageDriverPostgres, cfg.Storage.Driver)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
			},
		},
		{
			name: "yaml values: ok",
			body: "storage:\n  driver: memory\nhttp:\n  addr: \":9090\"\n  requestTimeout: 3s\n",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, config.StorageDriverMemory, cfg.Storage.Driver)
				assert.Equal(t, ":9090", cfg.HTTP.Addr)
				assert.Equal(t, 3*time.Second, cfg.HTTP.RequestTimeout)
			},
		},
		{
			name: "env overrides yaml: ok",
			body: "database:\n  host: yaml-host\n",
			env:  map[string]string{"DATABASE_HOST": "env-host", "DATABASE_NAME": "shop", "HTTP_TRUST_PROXY_HEADERS": "true"},
			check: func(t *testing.T, cfg *config.Config) {
				assert.True(t, cfg.HTTP.TrustProxyHeaders)
				assert.Equal(t, "env-host", cfg.Database.Host)
				assert.Contains(t, cfg.ConnString(), "host=env-host")
				assert.Contains(t, cfg.ConnString(), "dbname=shop")
			},
		},
		{
			name:      "unknown driver: error",
			body:      "storage:\n  driver: mongo\n",
			wantError: "unknown storage driver[mongo]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := config.Load(writeConfig(t, tt.body))
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
}
