// Package paths resolves where the application keeps its data.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	AppDirName          = "mybooks"
	DatabaseFileName    = "mybooks.db"
	EnvDataDir          = "MYBOOKS_DATA_DIR"
	FallbackDatabaseDir = "."
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	goos          string
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	goos:          runtime.GOOS,
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultDataDir returns the platform-specific application-private data directory.
//
// Linux:   $XDG_DATA_HOME/mybooks (fallback ~/.local/share/mybooks)
// macOS:   ~/Library/Application Support/mybooks
// Windows: %APPDATA%/mybooks
func DefaultDataDir() (string, error) {
	if platformDir.goos == "linux" {
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, AppDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", AppDirName), nil
	}

	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppDirName), nil
}

// ResolveDataDir returns MYBOOKS_DATA_DIR (made absolute) when set, otherwise
// DefaultDataDir().
func ResolveDataDir() (string, error) {
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultDataDir()
}

// DefaultDatabasePath returns the database file inside the resolved data
// directory, or a file in the working directory when no data directory can
// be determined.
func DefaultDatabasePath() string {
	dir, err := ResolveDataDir()
	if err != nil {
		dir = FallbackDatabaseDir
	}
	return filepath.Join(dir, DatabaseFileName)
}
