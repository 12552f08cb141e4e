package paths

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withPlatform(t *testing.T, goos, home, configDir string, err error) {
	t.Helper()
	saved := platformDir
	t.Cleanup(func() { platformDir = saved })

	platformDir.goos = goos
	platformDir.homeDir = func() (string, error) { return home, err }
	platformDir.userConfigDir = func() (string, error) { return configDir, err }
}

func TestDefaultDataDir(t *testing.T) {
	t.Run("linux uses XDG_DATA_HOME when set", func(t *testing.T) {
		withPlatform(t, "linux", "/home/reader", "", nil)
		t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

		got, err := DefaultDataDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/tmp/xdg-data", "mybooks"), got)
	})

	t.Run("linux falls back to ~/.local/share", func(t *testing.T) {
		withPlatform(t, "linux", "/home/reader", "", nil)
		t.Setenv("XDG_DATA_HOME", "")

		got, err := DefaultDataDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/home/reader", ".local", "share", "mybooks"), got)
	})

	t.Run("other platforms use the user config dir", func(t *testing.T) {
		withPlatform(t, "darwin", "/Users/reader", "/Users/reader/Library/Application Support", nil)

		got, err := DefaultDataDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/Users/reader/Library/Application Support", "mybooks"), got)
	})

	t.Run("propagates lookup errors", func(t *testing.T) {
		withPlatform(t, "windows", "", "", errors.New("no profile"))

		_, err := DefaultDataDir()
		assert.Error(t, err)
	})
}

func TestResolveDataDir(t *testing.T) {
	t.Run("env wins", func(t *testing.T) {
		withPlatform(t, "linux", "/home/reader", "", nil)
		t.Setenv(EnvDataDir, "/srv/mybooks")

		got, err := ResolveDataDir()
		require.NoError(t, err)
		assert.Equal(t, "/srv/mybooks", got)
	})

	t.Run("relative env becomes absolute", func(t *testing.T) {
		t.Setenv(EnvDataDir, "relative/data")

		got, err := ResolveDataDir()
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got), "expected absolute path, got %s", got)
	})

	t.Run("platform default without env", func(t *testing.T) {
		withPlatform(t, "linux", "/home/reader", "", nil)
		t.Setenv(EnvDataDir, "")
		t.Setenv("XDG_DATA_HOME", "")

		got, err := ResolveDataDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/home/reader", ".local", "share", "mybooks"), got)
	})
}

func TestDefaultDatabasePath(t *testing.T) {
	t.Run("inside the data dir", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/srv/mybooks")
		assert.Equal(t, filepath.Join("/srv/mybooks", "mybooks.db"), DefaultDatabasePath())
	})

	t.Run("working directory when the data dir is unknown", func(t *testing.T) {
		withPlatform(t, "windows", "", "", errors.New("no profile"))
		t.Setenv(EnvDataDir, "")

		assert.Equal(t, "mybooks.db", DefaultDatabasePath())
	})
}
