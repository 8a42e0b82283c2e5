// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

const testAdmin = "0x1000000000000000000000000000000000000001"

func setRequiredEnv(t *testing.T) {
	t.Setenv("ADMIN_ADDRESS", testAdmin)
	t.Setenv("CALLER_KEY_SALT", "test-salt")
}

func TestParseFlags_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := parse("missing.env", []string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default sqlite, got %q", cfg.DatabaseType)
	}
	if cfg.DatabaseURL == "" {
		t.Error("expected a default database URL")
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("expected default origins [*], got %v", cfg.CORSOrigins)
	}
	if cfg.PrintAdminKey {
		t.Error("print-admin-key should default to false")
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := parse("missing.env", []string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %q", cfg.DatabaseType)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Errorf("unexpected origins %v", cfg.CORSOrigins)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9000")

	cfg, err := parse("missing.env", []string{"-p", "8080", "-d", "file:test.db", "-key-salt", "s1", "-print-admin-key"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.CallerKeySalt != "s1" {
		t.Errorf("expected salt from flag, got %q", cfg.CallerKeySalt)
	}
	if !cfg.PrintAdminKey {
		t.Error("expected print-admin-key to be set")
	}
}

func TestParseFlags_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "ADMIN_ADDRESS=" + testAdmin + "\nCALLER_KEY_SALT=from-file\nPORT=7000\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	// godotenv sets these with os.Setenv; register them for cleanup.
	t.Setenv("ADMIN_ADDRESS", "")
	t.Setenv("CALLER_KEY_SALT", "")
	t.Setenv("PORT", "")
	os.Unsetenv("ADMIN_ADDRESS")
	os.Unsetenv("CALLER_KEY_SALT")
	os.Unsetenv("PORT")

	cfg, err := parse(path, []string{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.CallerKeySalt != "from-file" {
		t.Errorf("expected salt from .env, got %q", cfg.CallerKeySalt)
	}
	if cfg.Port != 7000 {
		t.Errorf("expected port 7000 from .env, got %d", cfg.Port)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{
			name: "missing admin",
			env:  map[string]string{"CALLER_KEY_SALT": "s"},
		},
		{
			name: "invalid admin",
			env:  map[string]string{"ADMIN_ADDRESS": "not-an-address", "CALLER_KEY_SALT": "s"},
		},
		{
			name: "missing salt",
			env:  map[string]string{"ADMIN_ADDRESS": testAdmin},
		},
		{
			name: "bad database type",
			env:  map[string]string{"ADMIN_ADDRESS": testAdmin, "CALLER_KEY_SALT": "s"},
			args: []string{"-t", "mysql"},
		},
		{
			name: "invalid PORT env",
			env:  map[string]string{"ADMIN_ADDRESS": testAdmin, "CALLER_KEY_SALT": "s", "PORT": "abc"},
		},
		{
			name: "port out of range",
			env:  map[string]string{"ADMIN_ADDRESS": testAdmin, "CALLER_KEY_SALT": "s"},
			args: []string{"-p", "70000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ADMIN_ADDRESS", "")
			t.Setenv("CALLER_KEY_SALT", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if _, err := parse("missing.env", tt.args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
