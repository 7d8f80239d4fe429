package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Cache.Backend != BackendFile {
		t.Errorf("Backend = %q, want %q", cfg.Cache.Backend, BackendFile)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q, want %q", cfg.Server.Addr, ":8080")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	// Missing file falls back to defaults
	if cfg.Cache.Backend != BackendFile {
		t.Errorf("Backend = %q, want %q", cfg.Cache.Backend, BackendFile)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[cache]
backend = "redis"
ttl_hours = 48

[cache.redis]
addr = "localhost:6380"
db = 2

[server]
addr = ":9090"

[build]
limit = 100
formats = ["json", "svg"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Cache.Backend != BackendRedis {
		t.Errorf("Backend = %q, want %q", cfg.Cache.Backend, BackendRedis)
	}
	if cfg.Cache.Redis.Addr != "localhost:6380" {
		t.Errorf("Redis.Addr = %q, want %q", cfg.Cache.Redis.Addr, "localhost:6380")
	}
	if cfg.Cache.Redis.DB != 2 {
		t.Errorf("Redis.DB = %d, want 2", cfg.Cache.Redis.DB)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, ":9090")
	}
	if cfg.Build.Limit != 100 {
		t.Errorf("Build.Limit = %d, want 100", cfg.Build.Limit)
	}
	if len(cfg.Build.Formats) != 2 {
		t.Errorf("Build.Formats = %v, want two entries", cfg.Build.Formats)
	}
}

func TestLoadConfigBackfillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[build]\nlimit = 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Cache.Backend != BackendFile {
		t.Errorf("Backend = %q, want backfilled %q", cfg.Cache.Backend, BackendFile)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q, want backfilled %q", cfg.Server.Addr, ":8080")
	}
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not = [valid"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() should fail on invalid TOML")
	}
}

func TestCacheConfigTTL(t *testing.T) {
	tests := []struct {
		name  string
		hours int
		want  time.Duration
	}{
		{"default when zero", 0, 24 * time.Hour},
		{"default when negative", -5, 24 * time.Hour},
		{"explicit hours", 48, 48 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := CacheConfig{TTLHours: tt.hours}
			if got := cfg.TTL(); got != tt.want {
				t.Errorf("TTL() = %v, want %v", got, tt.want)
			}
		})
	}
}
