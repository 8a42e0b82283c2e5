package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/quickly-elect/auth"
	"github.com/danielhkuo/quickly-elect/cliparse"
	"github.com/danielhkuo/quickly-elect/db"
	"github.com/danielhkuo/quickly-elect/election"
	"github.com/danielhkuo/quickly-elect/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Validated by cliparse
	admin, _ := election.ParseIdentity(cfg.AdminAddress)

	if cfg.PrintAdminKey {
		fmt.Println(auth.GenerateCallerKey(admin.Hex(), cfg.CallerKeySalt))
		return
	}

	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Rebuild the election from its journal
	journal, err := db.NewJournal(dbConn)
	if err != nil {
		slog.Error("journal open failed", "error", err)
		os.Exit(1)
	}
	if err := journal.EnsureAdmin(admin); err != nil {
		slog.Error("admin check failed", "error", err)
		os.Exit(1)
	}
	entries, err := journal.Load()
	if err != nil {
		slog.Error("journal load failed", "error", err)
		os.Exit(1)
	}

	el, err := election.New(admin, election.Options{
		Clock:    election.SystemClock{},
		Logger:   slog.Default(),
		Recorder: journal,
	})
	if err != nil {
		slog.Error("election setup failed", "error", err)
		os.Exit(1)
	}
	if err := el.Replay(entries); err != nil {
		slog.Error("journal replay failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Election ready",
		"admin", admin.Hex(),
		"replayed", len(entries),
		"candidates", el.CandidateCount(),
		"open", el.Status().IsOpen,
	)

	// Create router
	handler := router.NewRouter(el, cfg)

	// Create server
	server := http.Server{
		Handler: handler,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
