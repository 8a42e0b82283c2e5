// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Elect API server.

Quickly Elect runs a single election with one fixed administrator. The
administrator registers voters and candidates and opens a time-boxed voting
window; each registered voter casts exactly one vote, and counts are public.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	ADMIN_ADDRESS=0x... CALLER_KEY_SALT=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -admin 0x... -key-salt ...

Print the administrator's caller key and exit:

	go run . -admin 0x... -key-salt ... -print-admin-key

# Configuration

Required settings:

  - ADMIN_ADDRESS (-admin): the administrator's hex address
  - CALLER_KEY_SALT (-key-salt): Secret for caller key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_URL (-d): connection string (default: file:quickly-elect.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - CORS_ORIGINS (-origins): allowed origins (default: *)

A .env file in the working directory is read first if present.

# Startup

Every accepted change is appended to a journal table before it takes effect.
On startup the journal is replayed into a fresh election, so a restart picks
up where the last run stopped. A database written under one administrator
refuses to start under another.

# Architecture

  - election: the election state machine (voters, candidates, window, tally)
  - handlers: HTTP request handlers (admin, voting, results)
  - router: Route definitions using Go 1.22+ routing, CORS
  - middleware: logging, JSON helpers, request validation
  - models: Request/response types
  - auth: Caller key generation and validation
  - db: Schema, journal persistence
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
