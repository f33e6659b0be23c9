package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// ConfigDir returns the platform config directory for app.
func ConfigDir(app string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}
	return configDirFor(runtime.GOOS, homeDir, app)
}

// configDirFor picks the config directory for goos:
// 1. $XDG_CONFIG_HOME/app (linux)
// 2. %APPDATA%/app (windows)
// 3. ~/.config/app
func configDirFor(goos, homeDir, app string) string {
	switch goos {
	case "darwin":
		return filepath.Join(homeDir, ".config", app)
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, app)
		}
		return filepath.Join(homeDir, ".config", app)
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, app)
		}
		return filepath.Join(homeDir, "AppData", "Roaming", app)
	default:
		return filepath.Join(homeDir, "."+app)
	}
}
