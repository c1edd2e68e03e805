// Package paths provides CLI directory and file path resolution
// CLI paths follow XDG on Linux, standard locations on Windows
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	projectOrg  = "apimgr"
	projectName = "xfetch"
)

// ConfigDir returns the CLI config directory
// Linux: ~/.config/apimgr/xfetch/
// Windows: %APPDATA%\apimgr\xfetch\
func ConfigDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), projectOrg, projectName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", projectOrg, projectName)
}

// LogDir returns the CLI log directory
// Linux: ~/.local/log/apimgr/xfetch/
// Windows: %LOCALAPPDATA%\apimgr\xfetch\log\
func LogDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("LOCALAPPDATA"), projectOrg, projectName, "log")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "log", projectOrg, projectName)
}

// ConfigFile returns the CLI config file path
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "cli.yml")
}

// EnvFile returns the per-user dotenv file holding credentials
func EnvFile() string {
	return filepath.Join(ConfigDir(), ".env")
}

// LogFile returns the CLI log file path
func LogFile() string {
	return filepath.Join(LogDir(), "cli.log")
}

// EnsureDirs creates all CLI directories with correct permissions.
// Called on startup before any file operations.
func EnsureDirs() error {
	dirs := []string{
		ConfigDir(),
		LogDir(),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("create dir %s: %w", dir, err)
		}
		// Ensure permissions even if dir existed
		if err := os.Chmod(dir, 0700); err != nil {
			return fmt.Errorf("chmod dir %s: %w", dir, err)
		}
	}
	return nil
}

// EnsureFile creates the parent dirs of path
func EnsureFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create parent dir: %w", err)
	}
	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	return path
}

// ResolveConfigPath resolves the --config flag to an absolute path
func ResolveConfigPath(configFlag string) string {
	if configFlag == "" {
		return ConfigFile()
	}

	configFlag = ExpandHome(configFlag)

	// Relative path - resolve from config dir
	if !filepath.IsAbs(configFlag) {
		configFlag = filepath.Join(ConfigDir(), configFlag)
	}
	return addExtIfNeeded(configFlag)
}

// addExtIfNeeded adds .yml extension if no extension provided
func addExtIfNeeded(path string) string {
	if filepath.Ext(path) != "" {
		return path
	}

	// No extension - try .yml first, then .yaml
	ymlPath := path + ".yml"
	if _, err := os.Stat(ymlPath); err == nil {
		return ymlPath
	}
	yamlPath := path + ".yaml"
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath
	}
	// Default to .yml for new files
	return ymlPath
}
