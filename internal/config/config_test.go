package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/hammamikhairi/recipebox/internal/logger"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil, env(nil), io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Mode != ModeWeb || cfg.Addr != ":8080" || cfg.LogFile != "stderr" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Level != logger.LevelNormal {
		t.Fatalf("expected normal level, got %d", cfg.Level)
	}
}

func TestParseEnvAndFlags(t *testing.T) {
	vars := env(map[string]string{EnvMode: "print", EnvAddr: ":9999"})

	cfg, err := Parse([]string{"-filter", "easy", "-sort", "name", "-quiet"}, vars, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Mode != ModePrint || cfg.Addr != ":9999" {
		t.Fatalf("env defaults not applied: %+v", cfg)
	}
	if cfg.Filter != "easy" || cfg.Sort != "name" || cfg.Level != logger.LevelOff {
		t.Fatalf("flags not applied: %+v", cfg)
	}

	cfg, err = Parse([]string{"-mode", "tui"}, vars, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Mode != ModeTUI {
		t.Fatalf("flag should override env, got %s", cfg.Mode)
	}
}

func TestParseLogFileDefaults(t *testing.T) {
	tests := []struct {
		name string
		args []string
		vars map[string]string
		want string
	}{
		{"web logs to console", []string{"-mode", "web"}, nil, "stderr"},
		{"print logs to console", []string{"-mode", "print"}, nil, "stderr"},
		{"tui logs to file", []string{"-mode", "tui"}, nil, DefaultTUILogFile},
		{"tui honours flag", []string{"-mode", "tui", "-log-file", "stderr"}, nil, "stderr"},
		{"tui honours env", []string{"-mode", "tui"}, map[string]string{EnvLogFile: "/tmp/rb.log"}, "/tmp/rb.log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse(tt.args, env(tt.vars), io.Discard)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if cfg.LogFile != tt.want {
				t.Fatalf("expected log file %q, got %q", tt.want, cfg.LogFile)
			}
		})
	}
}

func TestParseBadMode(t *testing.T) {
	_, err := Parse([]string{"-mode", "gui"}, env(nil), io.Discard)
	if !errors.Is(err, ErrBadMode) {
		t.Fatalf("expected ErrBadMode, got %v", err)
	}
}

func TestWarnings(t *testing.T) {
	cfg := Config{Filter: "vegan", Sort: "time"}
	if got := cfg.Warnings(); len(got) != 1 {
		t.Fatalf("expected one warning, got %v", got)
	}
	cfg = Config{Filter: "quick", Sort: "rating"}
	if got := cfg.Warnings(); len(got) != 1 {
		t.Fatalf("expected one warning, got %v", got)
	}
	if got := (Config{}).Warnings(); len(got) != 0 {
		t.Fatalf("expected no warnings, got %v", got)
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(EnvAddr+"=:7070\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv(EnvAddr, "")
	os.Unsetenv(EnvAddr)

	LoadEnv(path)
	cfg, err := Parse(nil, nil, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Addr != ":7070" {
		t.Fatalf("expected addr from .env, got %q", cfg.Addr)
	}
}
