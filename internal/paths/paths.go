// Package paths resolves where bookshelf keeps its configuration and its
// data. Both follow the same chain: explicit flag, then environment, then
// the per-user platform directory. The data directory additionally honors
// data_dir from config.yaml, which sits between the flag and the
// environment.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the per-user directories.
const AppName = "bookshelf"

// ConfigFileName is the configuration file inside the config directory.
const ConfigFileName = "config.yaml"

// Environment variables that override the platform defaults.
const (
	EnvConfigDir = "BOOKSHELF_CONFIG_DIR"
	EnvDataDir   = "BOOKSHELF_DATA_DIR"
)

// env abstracts the process environment so tests can substitute it.
var env = struct {
	getenv        func(string) string
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
	goos          string
}{
	getenv:        os.Getenv,
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
	goos:          runtime.GOOS,
}

// ConfigDir returns the configuration directory:
// flag > $BOOKSHELF_CONFIG_DIR > platform config dir.
func ConfigDir(flag string) (string, error) {
	if dir := firstSet(flag, env.getenv(EnvConfigDir)); dir != "" {
		return filepath.Abs(dir)
	}
	return platformDir("XDG_CONFIG_HOME", ".config")
}

// DataDir returns the data directory:
// flag > data_dir from config.yaml > $BOOKSHELF_DATA_DIR > platform data dir.
func DataDir(flag, fromConfig string) (string, error) {
	if dir := firstSet(flag, fromConfig, env.getenv(EnvDataDir)); dir != "" {
		return filepath.Abs(dir)
	}
	return platformDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

// ConfigFile returns the path of config.yaml inside configDir.
func ConfigFile(configDir string) string {
	return filepath.Join(configDir, ConfigFileName)
}

// platformDir returns the per-user application directory. On Linux it is
// $<xdgVar>/bookshelf, falling back to ~/<homeRel>/bookshelf; elsewhere it
// is os.UserConfigDir()/bookshelf for both config and data.
func platformDir(xdgVar, homeRel string) (string, error) {
	if env.goos != "linux" {
		base, err := env.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(base, AppName), nil
	}
	if xdg := env.getenv(xdgVar); xdg != "" {
		return filepath.Join(xdg, AppName), nil
	}
	home, err := env.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, homeRel, AppName), nil
}

func firstSet(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
