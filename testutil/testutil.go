// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-elect/auth"
	"github.com/danielhkuo/quickly-elect/cliparse"
	"github.com/danielhkuo/quickly-elect/db"
	"github.com/danielhkuo/quickly-elect/election"
)

// Fixed test identities. They are all digits so their checksummed form is
// the same string.
const (
	AdminAddress    = "0x1000000000000000000000000000000000000001"
	Voter1Address   = "0x2000000000000000000000000000000000000002"
	Voter2Address   = "0x3000000000000000000000000000000000000003"
	OutsiderAddress = "0x4000000000000000000000000000000000000004"
)

// TestKeySalt signs caller keys in tests
const TestKeySalt = "test-key-salt"

// Epoch is where every ManualClock starts unless told otherwise
var Epoch = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

// ManualClock is an election.Clock that only moves when told to
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewManualClock() *ManualClock {
	return &ManualClock{now: Epoch}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// MustParse parses a test address, failing the test on error
func MustParse(t testing.TB, address string) election.Identity {
	t.Helper()
	id, err := election.ParseIdentity(address)
	if err != nil {
		t.Fatalf("Invalid test address %q: %v", address, err)
	}
	return id
}

// QuietLogger discards everything
func QuietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewTestElection creates an in-memory election administered by AdminAddress
func NewTestElection(t testing.TB, clock election.Clock) *election.Election {
	t.Helper()

	el, err := election.New(MustParse(t, AdminAddress), election.Options{
		Clock:  clock,
		Logger: QuietLogger(),
	})
	if err != nil {
		t.Fatalf("Failed to create election: %v", err)
	}
	return el
}

// SetupTestDB creates a fresh sqlite database file with the full schema.
// It is closed when the test ends.
func SetupTestDB(t testing.TB) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "election.db")
	conn, err := db.Open(db.TypeSQLite, "file:"+path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

// NewJournaledElection loads the journal in conn and replays it into a new
// election, the same way the server starts up.
func NewJournaledElection(t testing.TB, conn *sql.DB, clock election.Clock) *election.Election {
	t.Helper()

	journal, err := db.NewJournal(conn)
	if err != nil {
		t.Fatalf("Failed to open journal: %v", err)
	}

	admin := MustParse(t, AdminAddress)
	if err := journal.EnsureAdmin(admin); err != nil {
		t.Fatalf("Failed to record admin: %v", err)
	}

	entries, err := journal.Load()
	if err != nil {
		t.Fatalf("Failed to load journal: %v", err)
	}

	el, err := election.New(admin, election.Options{
		Clock:    clock,
		Logger:   QuietLogger(),
		Recorder: journal,
	})
	if err != nil {
		t.Fatalf("Failed to create election: %v", err)
	}
	if err := el.Replay(entries); err != nil {
		t.Fatalf("Failed to replay journal: %v", err)
	}
	return el
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseURL:   "file::memory:",
		DatabaseType:  db.TypeSQLite,
		AdminAddress:  AdminAddress,
		CallerKeySalt: TestKeySalt,
		CORSOrigins:   []string{"*"},
	}
}

// CallerHeaders returns the headers that authenticate address
func CallerHeaders(address string) map[string]string {
	return map[string]string{
		auth.CallerAddressHeader: address,
		auth.CallerKeyHeader:     auth.GenerateCallerKey(address, TestKeySalt),
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t testing.TB, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t testing.TB, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
