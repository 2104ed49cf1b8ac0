package config_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idelchi/gogen/pkg/validator"

	"github.com/idelchi/sealr/internal/config"
)

func valid() config.Config {
	return config.Config{Mode: config.ModeProduction, Parallel: 1}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*config.Config) {}},
		{name: "development", mutate: func(c *config.Config) { c.Mode = config.ModeDevelopment }},
		{name: "test", mutate: func(c *config.Config) { c.Mode = config.ModeTest }},
		{name: "secret only", mutate: func(c *config.Config) { c.Secret = "s" }},
		{name: "secret file only", mutate: func(c *config.Config) { c.SecretFile = "f" }},
		{
			name:    "unknown mode",
			mutate:  func(c *config.Config) { c.Mode = "staging" },
			wantErr: "--mode must be one of [production development test]",
		},
		{
			name:    "both secrets",
			mutate:  func(c *config.Config) { c.Secret, c.SecretFile = "s", "f" },
			wantErr: "--secret is mutually exclusive with --secret-file",
		},
		{
			name:    "no workers",
			mutate:  func(c *config.Config) { c.Parallel = 0 },
			wantErr: "--parallel must be 1 or greater",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()

			switch {
			case tt.wantErr == "" && err != nil:
				t.Errorf("Validate() = %v, want nil", err)
			case tt.wantErr != "" && (err == nil || !strings.Contains(err.Error(), tt.wantErr)):
				t.Errorf("Validate() = %v, want %q", err, tt.wantErr)
			case tt.wantErr != "" && !errors.Is(err, validator.ErrValidation):
				t.Errorf("Validate() = %v, want it to wrap ErrValidation", err)
			}
		})
	}
}

func TestValidateReportsEveryFailure(t *testing.T) {
	t.Parallel()

	cfg := valid()
	cfg.Mode = "staging"
	cfg.Parallel = 0
	cfg.Secret, cfg.SecretFile = "s", "f"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want errors")
	}

	for _, want := range []string{
		"--mode must be one of",
		"--parallel must be 1 or greater",
		"--secret is mutually exclusive with --secret-file",
		"--secret-file is mutually exclusive with --secret",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() = %v, missing %q", err, want)
		}
	}
}

func TestModeIsProduction(t *testing.T) {
	t.Parallel()

	for mode, want := range map[config.Mode]bool{
		config.ModeProduction:  true,
		"":                     true,
		config.ModeDevelopment: false,
		config.ModeTest:        false,
	} {
		if got := mode.IsProduction(); got != want {
			t.Errorf("Mode(%q).IsProduction() = %v, want %v", mode, got, want)
		}
	}
}

func TestResolveSecret(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	path := filepath.Join(dir, "secret")
	if err := os.WriteFile(path, []byte("\n  s3cr3t \n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := valid()
	cfg.SecretFile = path

	if err := cfg.ResolveSecret(); err != nil {
		t.Fatalf("ResolveSecret: %v", err)
	}

	if cfg.Secret != "s3cr3t" {
		t.Errorf("Secret = %q, want %q", cfg.Secret, "s3cr3t")
	}

	empty := filepath.Join(dir, "empty")
	if err := os.WriteFile(empty, []byte(" \n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg = valid()
	cfg.SecretFile = empty

	if err := cfg.ResolveSecret(); err == nil {
		t.Error("ResolveSecret accepted an empty secret file")
	}

	cfg = valid()
	cfg.SecretFile = filepath.Join(dir, "missing")

	if err := cfg.ResolveSecret(); err == nil {
		t.Error("ResolveSecret accepted a missing file")
	}
}

func TestDisplayMasksSecret(t *testing.T) {
	t.Parallel()

	cfg := valid()
	cfg.Secret = "do-not-print"

	var buf bytes.Buffer
	if err := cfg.Display(&buf); err != nil {
		t.Fatal(err)
	}

	if strings.Contains(buf.String(), "do-not-print") {
		t.Errorf("Display leaked the secret:\n%s", buf.String())
	}

	if cfg.Secret != "do-not-print" {
		t.Error("Display modified the configuration")
	}
}
