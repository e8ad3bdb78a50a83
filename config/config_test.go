package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	conf, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "Y.I.T.I.O Bot", conf.Name)
	assert.Equal(t, "0.0.0.0", conf.Server.Host)
	assert.Equal(t, 10000, conf.Server.Port)
	assert.Equal(t, 8, conf.Pinger.IntervalMinutes)
	assert.False(t, conf.Pinger.Disabled)
	assert.Equal(t, "./yitio.db", conf.Database.Address)
}

func TestNewConfigEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("BOT_TOKEN", "token-from-env")
	t.Setenv("ADMIN_ID", "123456")
	t.Setenv("ADMIN_TOKEN", "stats-token")
	t.Setenv("WEBHOOK_URL", "https://bot.example.com/")
	t.Setenv("DISABLE_PINGER", "True")
	t.Setenv("USE_POLLING", "1")
	t.Setenv("PORT", "8080")

	conf, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "token-from-env", conf.Telegram.Token)
	assert.Equal(t, int64(123456), conf.Telegram.AdminID)
	assert.True(t, conf.Telegram.UsePolling)
	assert.Equal(t, "stats-token", conf.Server.AdminToken)
	assert.Equal(t, "https://bot.example.com", conf.Server.BaseURL, "trailing slash trimmed")
	assert.True(t, conf.Pinger.Disabled)
	assert.Equal(t, 8080, conf.Server.Port)
}

func TestNewConfigYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte(`
name: "Test Bot"
telegram:
  admin_id: 777
  use_polling: true
server:
  port: 9000
pinger:
  interval_minutes: 3
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	t.Setenv("CONFIG_PATH", path)

	conf, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "Test Bot", conf.Name)
	assert.Equal(t, int64(777), conf.Telegram.AdminID)
	assert.True(t, conf.Telegram.UsePolling)
	assert.Equal(t, 9000, conf.Server.Port)
	assert.Equal(t, 3, conf.Pinger.IntervalMinutes)
}

func TestRenderURLFallback(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("RENDER_SERVICE_NAME", "yitio-bot")

	conf, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://yitio-bot.onrender.com", conf.Server.BaseURL)
}
