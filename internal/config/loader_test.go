package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope", "config.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Tools) != 1 || cfg.Tools[0].Type != "scrape" {
		t.Errorf("default tools: %+v", cfg.Tools)
	}
	if cfg.Gateway.Port != 18890 {
		t.Errorf("default gateway port: %d", cfg.Gateway.Port)
	}
}

func TestLoad_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"credentials": {
			"firecrawlApi": {"apiKey": "k", "baseUrl": "https://fc.test"}
		},
		"tools": [
			{"type": "scrape"},
			{"type": "map", "description": "Map the docs site"}
		],
		"gateway": {"host": "0.0.0.0", "port": 9000}
	}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cred, ok := cfg.Credentials["firecrawlApi"]
	if !ok || cred.APIKey != "k" || cred.BaseURL != "https://fc.test" {
		t.Errorf("credentials: %+v", cfg.Credentials)
	}
	if len(cfg.Tools) != 2 || cfg.Tools[1].Description != "Map the docs site" {
		t.Errorf("tools: %+v", cfg.Tools)
	}
	if cfg.Gateway.Port != 9000 {
		t.Errorf("gateway port: %d", cfg.Gateway.Port)
	}
}

func TestLoad_InvalidJSONFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("broken config should not be fatal: %v", err)
	}
	if len(cfg.Tools) != 1 || cfg.Tools[0].Type != "scrape" {
		t.Errorf("expected defaults, got %+v", cfg.Tools)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"credentials": {"firecrawlApi": {"apiKey": "k"}}}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Credentials["firecrawlApi"].APIKey != "k" {
		t.Errorf("credentials lost: %+v", cfg.Credentials)
	}
	if cfg.Gateway.Host != "127.0.0.1" || cfg.Gateway.Port != 18890 {
		t.Errorf("gateway defaults lost: %+v", cfg.Gateway)
	}
	if !cfg.Sinks.Slack.ErrorsOnly {
		t.Error("sink defaults lost")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := DefaultConfig()
	cfg.Credentials["firecrawlApi"] = CredentialConfig{APIKey: "k"}
	cfg.Tools = append(cfg.Tools, ToolInstanceConfig{Type: "crawl"})
	if err := Save(&cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Credentials["firecrawlApi"].APIKey != "k" {
		t.Errorf("credentials not round-tripped: %+v", loaded.Credentials)
	}
	if len(loaded.Tools) != 2 || loaded.Tools[1].Type != "crawl" {
		t.Errorf("tools not round-tripped: %+v", loaded.Tools)
	}
}

func TestSave_RestrictsPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := DefaultConfig()
	if err := Save(&cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("config mode: %o, want 600", info.Mode().Perm())
	}
}
