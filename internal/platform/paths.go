// Package platform resolves where the config file and the board file
// live on each supported OS.
package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const defaultAppName = "tavle"

// Paths locates the config file and the persisted board on disk.
type Paths struct {
	ConfigPath string
	DataDir    string
	BoardPath  string
}

// Options select the app name used in the directory layout.
type Options struct {
	AppName string
	DevMode bool
}

// DefaultPaths resolves paths for the standard app name.
func DefaultPaths() (Paths, error) {
	return DefaultPathsWithOptions(Options{})
}

// DefaultPathsWithOptions resolves the per-user config and data
// locations for the current platform.
func DefaultPathsWithOptions(opts Options) (Paths, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return Paths{}, fmt.Errorf("user config dir: %w", err)
	}

	dataDir := configDir
	switch runtime.GOOS {
	case "linux":
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return Paths{}, fmt.Errorf("user home dir: %w", homeErr)
		}
		dataDir = filepath.Join(home, ".local", "share")
	case "windows":
		if v := strings.TrimSpace(os.Getenv("LOCALAPPDATA")); v != "" {
			dataDir = v
		}
	}

	return Resolve(runtime.GOOS, os.Getenv, configDir, dataDir, appNameFor(opts))
}

// appNameFor applies the dev-mode suffix so development boards never
// collide with real ones.
func appNameFor(opts Options) string {
	name := strings.TrimSpace(opts.AppName)
	if name == "" {
		name = defaultAppName
	}
	if opts.DevMode {
		name += "-dev"
	}
	return name
}

// Resolve computes the path set from explicit platform inputs so tests
// can cover each OS layout. The board file is named "<app>.json" inside
// the app's data directory.
func Resolve(goos string, getenv func(string) string, userConfigDir, userDataDir, appName string) (Paths, error) {
	if userConfigDir == "" || userDataDir == "" {
		return Paths{}, fmt.Errorf("empty base dirs")
	}
	appName = strings.TrimSpace(appName)
	if appName == "" {
		return Paths{}, fmt.Errorf("empty app name")
	}
	if getenv == nil {
		getenv = func(string) string { return "" }
	}

	configBase, dataBase := baseDirs(goos, getenv, userConfigDir, userDataDir)
	dataDir := filepath.Join(dataBase, appName)
	return Paths{
		ConfigPath: filepath.Join(configBase, appName, "config.toml"),
		DataDir:    dataDir,
		BoardPath:  filepath.Join(dataDir, appName+".json"),
	}, nil
}

// baseDirs picks the root config and data directories per OS. Linux
// honors the XDG overrides and Windows the roaming/local app data vars;
// everything else (macOS included) keeps the supplied user dirs.
func baseDirs(goos string, getenv func(string) string, configFallback, dataFallback string) (string, string) {
	switch goos {
	case "linux":
		return firstNonEmpty(getenv("XDG_CONFIG_HOME"), configFallback),
			firstNonEmpty(getenv("XDG_DATA_HOME"), dataFallback)
	case "windows":
		return firstNonEmpty(getenv("APPDATA"), configFallback),
			firstNonEmpty(getenv("LOCALAPPDATA"), dataFallback)
	}
	return configFallback, dataFallback
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
