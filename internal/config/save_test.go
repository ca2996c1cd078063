package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func readConfig(t *testing.T, path string) Config {
	t.Helper()
	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())
	cfg := Defaults()
	require.NoError(t, v.Unmarshal(&cfg))
	return cfg
}

func TestSetValue_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SetValue(path, "service.base_url", "https://api.example.com"))
	require.NoError(t, SetValue(path, "service.timeout", "3s"))
	require.NoError(t, SetValue(path, "history.enabled", "false"))

	cfg := readConfig(t, path)
	require.Equal(t, "https://api.example.com", cfg.Service.BaseURL)
	require.Equal(t, 3*time.Second, cfg.Service.Timeout)
	require.False(t, cfg.History.Enabled)
}

func TestSetValue_PreservesComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	require.NoError(t, SetValue(path, "form.gate_policy", "strict"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "# Registration service")
	require.Contains(t, string(data), "gate_policy: strict")

	cfg := readConfig(t, path)
	require.Equal(t, "strict", cfg.Form.GatePolicy)
	require.Equal(t, "current", cfg.Form.PasswordCheck, "siblings untouched")
	require.Equal(t, "http://localhost:8000", cfg.Service.BaseURL)
}

func TestSetValue_AddsNestedSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("service:\n  base_url: http://a\n"), 0o600))

	require.NoError(t, SetValue(path, "tracing.sample_rate", "0.25"))

	cfg := readConfig(t, path)
	require.Equal(t, "http://a", cfg.Service.BaseURL)
	require.InDelta(t, 0.25, cfg.Tracing.SampleRate, 1e-9)
}

func TestSetValue_QuotesStringsThatLookLikeOtherTypes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SetValue(path, "theme.preset", "yes: no"))

	cfg := readConfig(t, path)
	require.Equal(t, "yes: no", cfg.Theme.Preset)
}

func TestSetValue_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := SetValue(path, "service.password", "x")
	require.ErrorContains(t, err, "unknown config key")

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr), "rejected keys must not create the file")
}

func TestSetValue_RejectsNonMappingDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- a\n- b\n"), 0o600))

	err := SetValue(path, "service.base_url", "http://x")
	require.Error(t, err)
}
