package main

import (
	"testing"

	"github.com/BurntSushi/toml"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	if len(cfg.Columns) != 5 {
		t.Errorf("default columns = %v, want the 5 iris columns", cfg.Columns)
	}
	if cfg.Class != "class" {
		t.Errorf("default class = %q, want class", cfg.Class)
	}
	if cfg.Output == "" {
		t.Error("default output path is empty")
	}
}

func TestConfigOverride(t *testing.T) {
	cfg := defaultConfig()
	_, err := toml.Decode(`
url = "http://localhost/iris.data"
output = "out.pdf"
source_qr = true
`, &cfg)
	if err != nil {
		t.Fatalf("decoding config: %v", err)
	}
	if cfg.URL != "http://localhost/iris.data" {
		t.Errorf("url = %q, not overridden", cfg.URL)
	}
	if cfg.Output != "out.pdf" {
		t.Errorf("output = %q, not overridden", cfg.Output)
	}
	if !cfg.SourceQR {
		t.Error("source_qr not overridden")
	}
	// Fields absent from the file keep their defaults.
	if cfg.Class != "class" {
		t.Errorf("class = %q, default lost on partial override", cfg.Class)
	}
}
