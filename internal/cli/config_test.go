package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFile(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	dir := filepath.Join(tmp, appName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := `
api_url = "https://hub.example.com"
api_username = "jdoe"
api_password = "hunter2"
workbook_path = "/data/collections.xlsx"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfigFile()
	if err != nil {
		t.Fatalf("loadConfigFile() error: %v", err)
	}
	if cfg.APIURL != "https://hub.example.com" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.APIUsername != "jdoe" {
		t.Errorf("APIUsername = %q", cfg.APIUsername)
	}
	if cfg.APIPassword != "hunter2" {
		t.Errorf("APIPassword = %q", cfg.APIPassword)
	}
	if cfg.WorkbookPath != "/data/collections.xlsx" {
		t.Errorf("WorkbookPath = %q", cfg.WorkbookPath)
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfigFile()
	if err != nil {
		t.Fatalf("loadConfigFile() error: %v", err)
	}
	if cfg != (fileConfig{}) {
		t.Errorf("cfg = %+v, want zero value", cfg)
	}
}

func TestLoadConfigFileMalformed(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	dir := filepath.Join(tmp, appName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("api_url = ["), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := loadConfigFile(); err == nil {
		t.Error("loadConfigFile() should fail on malformed TOML")
	}
}
