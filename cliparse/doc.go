// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Values are resolved in three layers, later layers winning:

 1. a .env file in the working directory, if present (godotenv)
 2. environment variables (decoded with caarlos0/env)
 3. CLI flags

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: connection string (default: file:quickly-elect.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - AdminAddress: the election administrator (required)
  - CallerKeySalt: Secret for caller key HMAC (required)
  - CORSOrigins: allowed browser origins (default: *)

# CLI Flags

	-p                Server port
	-d                Database URL
	-t                Database type
	-admin            Administrator address
	-key-salt         Caller key salt
	-origins          Allowed CORS origins, comma separated
	-print-admin-key  Print the administrator caller key and exit

# Environment Variables

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	ADMIN_ADDRESS   → -admin
	CALLER_KEY_SALT → -key-salt
	CORS_ORIGINS    → -origins

# Validation

ParseFlags returns an error if:

  - ADMIN_ADDRESS is missing or not a hex address
  - CALLER_KEY_SALT is missing
  - the port is out of range or the database type is unknown
*/
package cliparse
