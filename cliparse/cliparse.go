package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/danielhkuo/quickly-elect/election"
)

type Config struct {
	Port          int      `env:"PORT" envDefault:"3318"`
	DatabaseURL   string   `env:"DATABASE_URL" envDefault:"file:quickly-elect.db"`
	DatabaseType  string   `env:"DATABASE_TYPE" envDefault:"sqlite"`
	AdminAddress  string   `env:"ADMIN_ADDRESS"`
	CallerKeySalt string   `env:"CALLER_KEY_SALT"`
	CORSOrigins   []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	// PrintAdminKey asks main to print the admin caller key and exit.
	PrintAdminKey bool
}

// ParseFlags loads .env, reads the environment, then applies flags on top.
func ParseFlags(args []string) (Config, error) {
	return parse(".env", args)
}

func parse(envFile string, args []string) (Config, error) {
	// .env is optional; variables already set in the environment win
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	fs := flag.NewFlagSet("quickly-elect", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Database type (sqlite or postgres)")

	fs.StringVar(&cfg.AdminAddress, "admin", cfg.AdminAddress, "Administrator address")
	origins := fs.String("origins", strings.Join(cfg.CORSOrigins, ","), "Allowed CORS origins, comma separated")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.CallerKeySalt, "key-salt", cfg.CallerKeySalt, "Caller key salt (prefer env)")

	fs.BoolVar(&cfg.PrintAdminKey, "print-admin-key", false, "Print the administrator caller key and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.CORSOrigins = splitList(*origins)

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("database type must be sqlite or postgres, got %q", cfg.DatabaseType)
	}

	if cfg.AdminAddress == "" {
		return Config{}, errors.New("admin address required (use -admin or ADMIN_ADDRESS env)")
	}
	if _, err := election.ParseIdentity(cfg.AdminAddress); err != nil {
		return Config{}, fmt.Errorf("admin address: %w", err)
	}

	// Secrets - MUST be provided
	if cfg.CallerKeySalt == "" {
		return Config{}, errors.New("CALLER_KEY_SALT required")
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
