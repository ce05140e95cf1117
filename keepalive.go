package main

import (
	"context"
	"net/http"
	"time"
)

// serveKeepAlive exposes the liveness endpoint hosting platforms poll to
// keep the process from being put to sleep.
func (a *App) serveKeepAlive(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("Bot is alive and running."))
	})

	srv := &http.Server{
		Addr:              ":" + a.cfg.env.Port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}
