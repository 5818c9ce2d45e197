package commonGo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachFileLogger(t *testing.T) {
	t.Parallel()

	log := logger.GetOrCreate("commonGo-test")

	t.Run("disabled file logging should return nil", func(t *testing.T) {
		t.Parallel()

		handler, err := AttachFileLogger(log, "logs", "display", false, t.TempDir())
		assert.NoError(t, err)
		assert.True(t, check.IfNil(handler))
	})
	t.Run("enabled file logging should create the log file", func(t *testing.T) {
		t.Parallel()

		workingDir := t.TempDir()
		handler, err := AttachFileLogger(log, "logs", "display", true, workingDir)
		require.NoError(t, err)
		require.False(t, check.IfNil(handler))
		defer func() {
			_ = handler.Close()
		}()

		entries, err := os.ReadDir(filepath.Join(workingDir, "logs"))
		require.NoError(t, err)
		assert.NotEmpty(t, entries)
	})
}

func TestReadEnvOverrides(t *testing.T) {
	t.Run("missing file should keep the defaults", func(t *testing.T) {
		values := map[string]string{
			"OLED_TEST_MISSING_KEY": "default",
		}

		err := ReadEnvOverrides(filepath.Join(t.TempDir(), ".env"), values)
		assert.NoError(t, err)
		assert.Equal(t, "default", values["OLED_TEST_MISSING_KEY"])
	})
	t.Run("file values should override the defaults", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), ".env")
		err := os.WriteFile(envFile, []byte("OLED_TEST_BUS=/dev/i2c-3\n"), 0644)
		require.NoError(t, err)
		t.Cleanup(func() {
			_ = os.Unsetenv("OLED_TEST_BUS")
		})

		values := map[string]string{
			"OLED_TEST_BUS":         "",
			"OLED_TEST_UNSET_VALUE": "kept",
		}
		err = ReadEnvOverrides(envFile, values)
		assert.NoError(t, err)
		assert.Equal(t, "/dev/i2c-3", values["OLED_TEST_BUS"])
		assert.Equal(t, "kept", values["OLED_TEST_UNSET_VALUE"])
	})
	t.Run("process environment should override the defaults", func(t *testing.T) {
		t.Setenv("OLED_TEST_SIGNATURE", "/opt/display")

		values := map[string]string{
			"OLED_TEST_SIGNATURE": "/usr/local/bin/ssd1306_display",
		}
		err := ReadEnvOverrides(filepath.Join(t.TempDir(), ".env"), values)
		assert.NoError(t, err)
		assert.Equal(t, "/opt/display", values["OLED_TEST_SIGNATURE"])
	})
}
