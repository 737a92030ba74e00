package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadProjectConfigDefaultsWhenMissing(t *testing.T) {
	projectDir := t.TempDir()
	drafterDir := filepath.Join(projectDir, ".drafter")
	if err := os.MkdirAll(drafterDir, 0755); err != nil {
		t.Fatal(err)
	}
	c := &Config{ProjectDir: projectDir, DrafterProjectDir: drafterDir, Project: defaultProjectConfig()}
	if err := c.loadProjectConfig(); err != nil {
		t.Fatalf("loadProjectConfig returned error: %v", err)
	}
	if c.Project.Version != 1 {
		t.Fatalf("expected default version == 1, got %d", c.Project.Version)
	}
	if got, want := c.RosterPath(), filepath.Join(projectDir, "players.txt"); got != want {
		t.Fatalf("roster path = %s, want %s", got, want)
	}
	if !c.SaveOnExit() || !c.ClipboardEnabled() {
		t.Fatalf("save_on_exit and clipboard should default to true")
	}
	if c.Seed() != 0 {
		t.Fatalf("expected seed 0, got %d", c.Seed())
	}
}

func TestLoadProjectConfigParsesYaml(t *testing.T) {
	projectDir := t.TempDir()
	drafterDir := filepath.Join(projectDir, ".drafter")
	if err := os.MkdirAll(drafterDir, 0755); err != nil {
		t.Fatal(err)
	}
	configYAML := strings.TrimSpace(`
version: 1
roster:
  path: data/league.txt
  save_on_exit: false
draft:
  seed: 77
export:
  dir: /tmp/drafter-exports
  clipboard: false
`)
	if err := os.WriteFile(filepath.Join(drafterDir, "config.yaml"), []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}
	c := &Config{ProjectDir: projectDir, DrafterProjectDir: drafterDir, Project: defaultProjectConfig()}
	if err := c.loadProjectConfig(); err != nil {
		t.Fatalf("loadProjectConfig returned error: %v", err)
	}
	if got, want := c.RosterPath(), filepath.Join(projectDir, "data", "league.txt"); got != want {
		t.Fatalf("roster path = %s, want %s", got, want)
	}
	if c.SaveOnExit() {
		t.Fatalf("expected save_on_exit false")
	}
	if c.ClipboardEnabled() {
		t.Fatalf("expected clipboard false")
	}
	if c.Seed() != 77 {
		t.Fatalf("expected seed 77, got %d", c.Seed())
	}
	if c.ExportDir() != "/tmp/drafter-exports" {
		t.Fatalf("absolute export dir should be kept, got %s", c.ExportDir())
	}
}

func TestLoadProjectConfigValidation(t *testing.T) {
	projectDir := t.TempDir()
	drafterDir := filepath.Join(projectDir, ".drafter")
	if err := os.MkdirAll(drafterDir, 0755); err != nil {
		t.Fatal(err)
	}
	configYAML := strings.TrimSpace(`
version: 1
draft:
  seed: -4
`)
	if err := os.WriteFile(filepath.Join(drafterDir, "config.yaml"), []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}
	c := &Config{ProjectDir: projectDir, DrafterProjectDir: drafterDir, Project: defaultProjectConfig()}
	if err := c.loadProjectConfig(); err == nil {
		t.Fatalf("expected validation error but got none")
	}
}

func TestInitDrafterDirWritesDefaultConfig(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitDrafterDir(projectDir); err != nil {
		t.Fatalf("InitDrafterDir: %v", err)
	}
	for _, dir := range []string{"logs", "drafts"} {
		if info, err := os.Stat(filepath.Join(projectDir, ".drafter", dir)); err != nil || !info.IsDir() {
			t.Fatalf("expected .drafter/%s directory: %v", dir, err)
		}
	}
	cfg, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.ExportDir() != filepath.Join(projectDir, ".drafter", "drafts") {
		t.Fatalf("unexpected export dir %s", cfg.ExportDir())
	}
	if cfg.LogPath() != filepath.Join(projectDir, ".drafter", "logs", "drafter.log") {
		t.Fatalf("unexpected log path %s", cfg.LogPath())
	}
}

func TestNewConfigAppliesEnvironment(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitDrafterDir(projectDir); err != nil {
		t.Fatalf("InitDrafterDir: %v", err)
	}
	t.Setenv("DRAFTER_SEED", "9001")
	t.Setenv("DRAFTER_CLIPBOARD", "false")
	t.Setenv("DRAFTER_ROSTER", "")
	cfg, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Seed() != 9001 {
		t.Fatalf("expected seed from env, got %d", cfg.Seed())
	}
	if cfg.ClipboardEnabled() {
		t.Fatalf("expected clipboard disabled from env")
	}
	if got, want := cfg.RosterPath(), filepath.Join(projectDir, "players.txt"); got != want {
		t.Fatalf("empty env value must not override roster: %s", got)
	}
}

func TestNewConfigReadsDotEnv(t *testing.T) {
	projectDir := t.TempDir()
	t.Setenv("DRAFTER_ROSTER", "")
	if err := os.WriteFile(filepath.Join(projectDir, ".env"), []byte("DRAFTER_ROSTER=league/players.txt\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// godotenv never overrides variables that are already set, so unset the
	// placeholder t.Setenv registered for cleanup.
	if err := os.Unsetenv("DRAFTER_ROSTER"); err != nil {
		t.Fatal(err)
	}
	cfg, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if got, want := cfg.RosterPath(), filepath.Join(projectDir, "league", "players.txt"); got != want {
		t.Fatalf("roster path = %s, want %s", got, want)
	}
}

func TestApplyOverridesRejectsBadValues(t *testing.T) {
	c := &Config{Project: defaultProjectConfig()}
	if err := c.ApplyOverrides(EnvOverrides{Seed: "abc"}); err == nil {
		t.Fatalf("expected seed parse error")
	}
	if err := c.ApplyOverrides(EnvOverrides{Clipboard: "maybe"}); err == nil {
		t.Fatalf("expected clipboard parse error")
	}
}

func TestNegativeSeedOverrideIsRejected(t *testing.T) {
	c := &Config{Project: defaultProjectConfig()}
	if err := c.ApplyOverrides(EnvOverrides{Seed: "-5"}); err == nil {
		t.Fatalf("expected negative seed to be rejected")
	}

	projectDir := t.TempDir()
	if err := InitDrafterDir(projectDir); err != nil {
		t.Fatalf("init drafter dir: %v", err)
	}
	t.Setenv("DRAFTER_SEED", "-5")
	if _, err := NewConfig(projectDir); err == nil || !strings.Contains(err.Error(), "draft.seed") {
		t.Fatalf("expected draft.seed validation error from environment, got %v", err)
	}
}
