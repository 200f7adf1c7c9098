package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/claude/liftlog/internal/config"
	"github.com/claude/liftlog/internal/logbook"
	"github.com/claude/liftlog/internal/mcp"
	"github.com/claude/liftlog/internal/server"
	"github.com/claude/liftlog/internal/store"
	"tailscale.com/tsnet"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	migrateOnly := flag.Bool("migrate-only", false, "run migrations and exit (postgres backend)")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("LiftLog starting", "version", Version)

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Open the record store
	ctx := context.Background()
	var rs store.RecordStore
	switch cfg.Store.Backend {
	case "postgres":
		dsn := cfg.Store.Database.DSN()
		if err := store.RunMigrations(dsn, "migrations"); err != nil {
			log.Error("migration failed", "error", err)
			os.Exit(1)
		}
		log.Info("migrations applied")
		if *migrateOnly {
			log.Info("migrate-only: exiting")
			return
		}
		rs, err = store.OpenPostgres(ctx, dsn)
	default:
		rs, err = store.OpenSQLite(cfg.Store.DataDir)
	}
	if err != nil {
		log.Error("failed to open record store", "backend", cfg.Store.Backend, "error", err)
		os.Exit(1)
	}
	defer rs.Close()
	log.Info("record store ready", "backend", cfg.Store.Backend)

	// Create the controller and load history
	book := logbook.New(rs, log)
	if err := book.Refresh(ctx); err != nil {
		log.Error("failed to load session history", "error", err)
		os.Exit(1)
	}

	// Create server
	srv := server.New(book, log)
	srv.Mount("/mcp", mcp.Handler(mcp.New(book, Version, log)))

	// Start server — tsnet or plain HTTP
	var listener net.Listener
	var tsServer *tsnet.Server

	if cfg.Tailscale.Enabled {
		tsServer = &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "mode", "dev (no tailscale)")
	}

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}
