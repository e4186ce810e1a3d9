package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/larynjahor/pushpop/internal/config"
	"github.com/larynjahor/pushpop/pkg"
	"github.com/larynjahor/pushpop/pkg/driver"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.Load(viper.New())
		require.NoError(t, err)

		require.Equal(t, config.DefaultFile, cfg.File)
		require.Equal(t, driver.FormatText, cfg.Format)
		require.False(t, cfg.Debug)
		require.Empty(t, cfg.LogFile)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pushpop.yaml")
		require.NoError(t, os.WriteFile(path, []byte("file: numbers.txt\noutput: yaml\ndebug: true\nlog-file: /tmp/pushpop.log\n"), 0o600))

		v := viper.New()
		v.SetConfigFile(path)
		require.NoError(t, v.ReadInConfig())

		cfg, err := config.Load(v)
		require.NoError(t, err)

		require.Equal(t, "numbers.txt", cfg.File)
		require.Equal(t, driver.FormatYAML, cfg.Format)
		require.True(t, cfg.Debug)
		require.Equal(t, "/tmp/pushpop.log", cfg.LogFile)
	})

	t.Run("override", func(t *testing.T) {
		v := viper.New()
		v.Set("output", "JSON")

		cfg, err := config.Load(v)
		require.NoError(t, err)
		require.Equal(t, driver.FormatJSON, cfg.Format)
	})

	t.Run("unknown output", func(t *testing.T) {
		v := viper.New()
		v.Set("output", "xml")

		_, err := config.Load(v)
		require.ErrorIs(t, err, pkg.ErrUnknownFormat)
	})
}
