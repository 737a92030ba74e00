// internal/config/config.go
//
// This package handles configuration and the .drafter directory structure.
// Every project that uses drafter gets a .drafter/ folder created in its root.
// Values come from .drafter/config.yaml, then an optional .env file and the
// process environment, then command-line flags.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DrafterDir is the name of the directory we create in each project
	DrafterDir = ".drafter"

	defaultRosterPath = "players.txt"
	defaultExportDir  = "drafts"
	logFileName       = "drafter.log"
)

const defaultProjectConfigYAML = `# drafter project configuration
version: 1

roster:
  # Player pool file, one "name,score,role" record per line.
  # Relative paths resolve against the project directory.
  path: players.txt
  # Rewrite the roster sorted by name when the interactive session ends.
  save_on_exit: true

draft:
  # Shuffle seed. 0 draws a fresh seed for every draft.
  seed: 0

export:
  # Where exported drafts are written, relative to .drafter/.
  dir: drafts
  # Copy the team summary to the system clipboard after each draft.
  clipboard: true
`

// RosterConfig locates the player pool.
type RosterConfig struct {
	Path       string `yaml:"path"`
	SaveOnExit *bool  `yaml:"save_on_exit,omitempty"`
}

// DraftConfig tunes the balancer.
type DraftConfig struct {
	Seed int64 `yaml:"seed"`
}

// ExportConfig controls what happens with a finished draft.
type ExportConfig struct {
	Dir       string `yaml:"dir"`
	Clipboard *bool  `yaml:"clipboard,omitempty"`
}

// ProjectConfig models .drafter/config.yaml.
type ProjectConfig struct {
	Version int          `yaml:"version"`
	Roster  RosterConfig `yaml:"roster"`
	Draft   DraftConfig  `yaml:"draft"`
	Export  ExportConfig `yaml:"export"`
}

// EnvOverrides are read from the environment after the config file.
// Empty values leave the file setting alone.
type EnvOverrides struct {
	Roster    string `env:"DRAFTER_ROSTER"`
	Seed      string `env:"DRAFTER_SEED"`
	Clipboard string `env:"DRAFTER_CLIPBOARD"`
}

// Config holds the runtime configuration for drafter.
type Config struct {
	// ProjectDir is the directory where the user ran `drafter` from
	ProjectDir string

	// DrafterProjectDir is ProjectDir/.drafter
	DrafterProjectDir string

	Project ProjectConfig
}

// InitDrafterDir creates the .drafter directory structure in the given
// project directory and writes a default config.yaml if none exists.
//
// Structure created:
// .drafter/
// ├── config.yaml
// ├── logs/     <- drafter.log
// └── drafts/   <- exported draft records
func InitDrafterDir(projectDir string) error {
	drafterDir := filepath.Join(projectDir, DrafterDir)
	dirs := []string{
		filepath.Join(drafterDir, "logs"),
		filepath.Join(drafterDir, defaultExportDir),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return ensureProjectConfig(filepath.Join(drafterDir, "config.yaml"))
}

// NewConfig loads .drafter/config.yaml (defaults when absent) and applies
// environment overrides, including any set in ProjectDir/.env.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:        projectDir,
		DrafterProjectDir: filepath.Join(projectDir, DrafterDir),
		Project:           defaultProjectConfig(),
	}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	if err := loadDotEnv(filepath.Join(projectDir, ".env")); err != nil {
		return nil, err
	}
	var overrides EnvOverrides
	if _, err := env.UnmarshalFromEnviron(&overrides); err != nil {
		return nil, fmt.Errorf("config: read environment: %w", err)
	}
	if err := cfg.ApplyOverrides(overrides); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides layers non-empty override values onto the project config
// and validates the result the same way the config file is validated.
func (c *Config) ApplyOverrides(o EnvOverrides) error {
	if v := strings.TrimSpace(o.Roster); v != "" {
		c.Project.Roster.Path = v
	}
	if v := strings.TrimSpace(o.Seed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: DRAFTER_SEED: %w", err)
		}
		c.Project.Draft.Seed = seed
	}
	if v := strings.TrimSpace(o.Clipboard); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: DRAFTER_CLIPBOARD: %w", err)
		}
		c.Project.Export.Clipboard = &enabled
	}
	if err := c.Project.validate(); err != nil {
		return fmt.Errorf("config: environment override: %w", err)
	}
	return nil
}

// RosterPath returns the absolute path to the player pool file.
func (c *Config) RosterPath() string {
	return resolvePath(c.ProjectDir, c.Project.Roster.Path)
}

// SetRosterPath overrides the roster location for this run only.
func (c *Config) SetRosterPath(path string) {
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		c.Project.Roster.Path = trimmed
	}
}

// SaveOnExit reports whether the roster should be rewritten sorted on exit.
func (c *Config) SaveOnExit() bool {
	return boolOr(c.Project.Roster.SaveOnExit, true)
}

// Seed returns the configured shuffle seed; zero means "pick one per draft".
func (c *Config) Seed() int64 {
	return c.Project.Draft.Seed
}

// SetSeed overrides the shuffle seed for this run only.
func (c *Config) SetSeed(seed int64) {
	c.Project.Draft.Seed = seed
}

// ClipboardEnabled reports whether summaries go to the system clipboard.
func (c *Config) ClipboardEnabled() bool {
	return boolOr(c.Project.Export.Clipboard, true)
}

// LogsDir returns the path to the logs directory
func (c *Config) LogsDir() string {
	return filepath.Join(c.DrafterProjectDir, "logs")
}

// LogPath returns the path of the drafter logbook.
func (c *Config) LogPath() string {
	return filepath.Join(c.LogsDir(), logFileName)
}

// ExportDir returns the directory exported drafts are written to.
func (c *Config) ExportDir() string {
	return resolvePath(c.DrafterProjectDir, c.Project.Export.Dir)
}

// ProjectConfigPath returns the on-disk location for the project config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.DrafterProjectDir, "config.yaml")
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Project = parsed
	return nil
}

func defaultProjectConfig() ProjectConfig {
	pc := ProjectConfig{}
	pc.applyDefaults()
	return pc
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	if strings.TrimSpace(pc.Roster.Path) == "" {
		pc.Roster.Path = defaultRosterPath
	}
	if strings.TrimSpace(pc.Export.Dir) == "" {
		pc.Export.Dir = defaultExportDir
	}
}

func (pc *ProjectConfig) normalize() {
	pc.Roster.Path = strings.TrimSpace(pc.Roster.Path)
	pc.Export.Dir = strings.TrimSpace(pc.Export.Dir)
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if pc.Draft.Seed < 0 {
		return fmt.Errorf("draft.seed must be >= 0")
	}
	return nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

func boolOr(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}

func resolvePath(base, candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return filepath.Clean(base)
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultProjectConfigYAML), 0644)
}
