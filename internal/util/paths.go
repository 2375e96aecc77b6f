package util

import (
	"os"
	"path/filepath"
	"strings"
)

func ConfigDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".config", app)
}

// ConfigPath is the default location of an app's config file.
func ConfigPath(app, file string) string {
	return filepath.Join(ConfigDir(app), file)
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") && !strings.Contains(path, "$HOME") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return strings.ReplaceAll(path, "$HOME", home)
}

// ExpandPath resolves a leading ~/ or $HOME in user supplied paths.
func ExpandPath(path string) string {
	return expandHome(strings.TrimSpace(path))
}
