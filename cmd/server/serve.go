package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/folio/internal/session"
	"github.com/dgallion1/folio/internal/site"
	"github.com/dgallion1/folio/internal/watcher"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"s"},
		Short:   "Start the site server",
		Long: `Start the HTTP server. With --watch, edits under --content-dir are
reloaded and open pages refresh themselves.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
	cmd.Flags().IntP("port", "p", 8090, "port to serve on")
	cmd.Flags().String("host", "", "host to bind to")
	cmd.Flags().BoolP("watch", "w", false, "reload content when files change")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	log, cfg := a.log, a.cfg

	store, err := a.loadContent()
	if err != nil {
		return err
	}

	sessions := session.NewRegistry(cfg.SessionTTL, cfg.SessionMax, log)
	go sessions.Run(ctx, time.Minute)

	if cfg.ContentWatch {
		w, err := watcher.New(cfg.ContentDir, watcher.DefaultDebounce, watcher.Reload(store, sessions, log), log)
		if err != nil {
			return err
		}
		defer w.Close()
		go w.Run(ctx)
		log.Info("watching content", "dir", cfg.ContentDir)
	}

	srv := site.NewServer(store, sessions, log, cfg)
	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      srv,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown.
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		log.Info("shutting down...")

		// Hijacked websocket connections are not tracked by Shutdown.
		sessions.CloseAll()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting folio", "addr", httpServer.Addr, "content_dir", cfg.ContentDir)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-done
	return nil
}
