// Package config loads stockpile.toml and resolves where the input tables live.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	// FileName is the config file looked up next to the executable and in the working directory
	FileName = "stockpile.toml"
	// DataRootEnv overrides the data root from the config file
	DataRootEnv = "STOCKPILE_DATA_ROOT"
)

// ErrNoDataRoot is returned when no data directory can be found
var ErrNoDataRoot = errors.New(
	"Could not locate data directory automatically. Pass --data-root /path/to/data explicitly.")

// AppConfig is the contents of stockpile.toml
type AppConfig struct {
	Data   DataConfig   `toml:"data"`
	Trips  TripsConfig  `toml:"trips"`
	Output OutputConfig `toml:"output"`
}

// DataConfig locates the input tables. Relative paths are resolved against Root.
type DataConfig struct {
	Root            string `toml:"root"`
	StockpilesFile  string `toml:"stockpiles_file"`
	RequirementsDir string `toml:"requirements_dir"`
	Profile         string `toml:"profile"`
	StockDir        string `toml:"stock_dir"`
}

// TripsConfig holds defaults for the trips command
type TripsConfig struct {
	Limit    int `toml:"limit"`
	TopItems int `toml:"top_items"`
}

// OutputConfig holds presentation defaults
type OutputConfig struct {
	Format string `toml:"format"`
}

// Paths are the resolved input locations for one run
type Paths struct {
	Root             string
	StockpilesFile   string
	RequirementsFile string
	StockDir         string
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Data: DataConfig{
			StockpilesFile:  "stockpiles.tsv",
			RequirementsDir: "base_requirements",
			Profile:         "collie",
			StockDir:        "current_stock",
		},
		Trips: TripsConfig{
			Limit:    0,
			TopItems: 3,
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// GetExeDir returns the directory holding the running executable
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// Load reads the config file at path. With an empty path it looks for
// stockpile.toml next to the executable, then in the working directory; no
// file found means defaults. The data root env var is applied last.
func Load(path string) (*AppConfig, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv(DataRootEnv); v != "" {
		cfg.Data.Root = v
	}

	return cfg, nil
}

func findConfigFile() string {
	var candidates []string
	if exeDir, err := GetExeDir(); err == nil {
		candidates = append(candidates, filepath.Join(exeDir, FileName))
	}
	candidates = append(candidates, FileName)

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// GuessDataRoot looks for a data directory next to the executable, then in the working directory
func GuessDataRoot() (string, error) {
	var candidates []string
	if exeDir, err := GetExeDir(); err == nil {
		candidates = append(candidates, filepath.Join(exeDir, "data"))
	}
	if wd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(wd, "data"))
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
	}
	return "", ErrNoDataRoot
}

// ResolvePaths works out the input locations. An empty Root is guessed.
func (c *AppConfig) ResolvePaths() (Paths, error) {
	root := c.Data.Root
	if root == "" {
		guessed, err := GuessDataRoot()
		if err != nil {
			return Paths{}, err
		}
		root = guessed
	}

	return Paths{
		Root:             root,
		StockpilesFile:   underRoot(root, c.Data.StockpilesFile),
		RequirementsFile: filepath.Join(underRoot(root, c.Data.RequirementsDir), c.Data.Profile+".tsv"),
		StockDir:         underRoot(root, c.Data.StockDir),
	}, nil
}

func underRoot(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
