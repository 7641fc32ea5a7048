package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/footprint"
	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nfp.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("cannot write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
data: /var/nfp
workers: 4
currency: EUR
files:
  exposures: loans.jsonl
`)
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	want := DefaultConfig()
	want.Data = "/var/nfp"
	want.Workers = 4
	want.Currency = "EUR"
	want.Files.Exposures = "loans.jsonl"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_Empty(t *testing.T) {
	got, err := LoadConfig(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("LoadConfig() of an empty file failed: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), got); diff != "" {
		t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}
	if got.GHGFactor != footprint.DefaultGHGFactor {
		t.Errorf("GHGFactor = %v, want %v", got.GHGFactor, footprint.DefaultGHGFactor)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, "wokers: 4\n")); err == nil {
		t.Error("LoadConfig() with an unknown key expected an error")
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfig() of a missing file expected an error")
	}
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		edit    func(*Config)
		wantErr bool
	}{
		{name: "default", edit: func(*Config) {}},
		{name: "no worker", edit: func(c *Config) { c.Workers = 0 }, wantErr: true},
		{name: "negative factor", edit: func(c *Config) { c.GHGFactor = -1 }, wantErr: true},
		{name: "no data", edit: func(c *Config) { c.Data = "" }, wantErr: true},
		{name: "reporting currency", edit: func(c *Config) { c.Currency = "EUR" }},
		{name: "unknown currency", edit: func(c *Config) { c.Currency = "EURO" }, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := DefaultConfig()
			tc.edit(&c)
			if err := c.Validate(); (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
