package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, path, `
app_name: notes-test
server:
  host: 127.0.0.1
  port: 8081
logger:
  level: 5
  format: text
paging:
  secret: s3cret
data:
  database:
    migrate: false
    master:
      driver: sqlite
      source: ":memory:"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AppName != "notes-test" {
		t.Errorf("AppName = %q", cfg.AppName)
	}
	if cfg.Addr() != "127.0.0.1:8081" {
		t.Errorf("Addr = %q", cfg.Addr())
	}
	if cfg.Logger.Level != 5 || cfg.Logger.Format != "text" {
		t.Errorf("Logger = %+v", cfg.Logger)
	}
	if cfg.Paging.Secret != "s3cret" {
		t.Errorf("Paging.Secret = %q", cfg.Paging.Secret)
	}
	if cfg.Data.Database.Migrate {
		t.Error("Migrate = true, want false")
	}
	if cfg.Data.Database.Master.Driver != "sqlite" {
		t.Errorf("Driver = %q", cfg.Data.Database.Master.Driver)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, path, "app_name: minimal\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Logger.Format != "json" {
		t.Errorf("Logger.Format = %q, want json", cfg.Logger.Format)
	}
	if !cfg.Data.Database.Migrate {
		t.Error("Migrate defaulted to false, want true")
	}
	if cfg.Data.Database.Master.Driver != "sqlite" {
		t.Errorf("Driver = %q, want sqlite", cfg.Data.Database.Master.Driver)
	}
}

func TestWatchFiresOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, path, "server:\n  port: 8081\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8081 {
		t.Fatalf("Port = %d, want 8081", cfg.Port)
	}

	changed := make(chan *Config, 8)
	cfg.Watch(func(fresh *Config) {
		changed <- fresh
	})

	// The watcher starts asynchronously; keep rewriting until a reload
	// with the new value arrives.
	rewrite := time.NewTicker(250 * time.Millisecond)
	defer rewrite.Stop()
	deadline := time.After(10 * time.Second)
	writeConfig(t, path, "server:\n  port: 9090\n")

	for {
		select {
		case fresh := <-changed:
			if fresh.Port == 9090 {
				return
			}
		case <-rewrite.C:
			writeConfig(t, path, "server:\n  port: 9090\n")
		case <-deadline:
			t.Fatal("config change was never observed")
		}
	}
}
