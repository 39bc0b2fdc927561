package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestReadConfig(t *testing.T) {
	dir := writeConfigFile(t, `
server:
  port: 8080
  environment: development
database:
  host: localhost
  port: 5432
  dbname: medreach
`)

	cfg, err := ReadConfig(dir)
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.DBName != "medreach" {
		t.Errorf("Database.DBName = %q, want medreach", cfg.Database.DBName)
	}
}

func TestReadConfigEnvOverride(t *testing.T) {
	dir := writeConfigFile(t, `
server:
  port: 8080
database:
  host: localhost
`)

	t.Setenv("MEDREACH_SERVER_PORT", "9999")
	t.Setenv("MEDREACH_DATABASE_HOST", "db.internal")

	cfg, err := ReadConfig(dir)
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want env override 9999", cfg.Server.Port)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("Database.Host = %q, want env override db.internal", cfg.Database.Host)
	}
}
