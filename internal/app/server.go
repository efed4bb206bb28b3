package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

// Start serves HTTP in the background. The returned channel closes once a
// termination signal arrives, after readiness has been dropped.
func (a *App) Start() <-chan struct{} {
	done := make(chan struct{})
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		slog.Info("http server listening", "address", a.httpServer.Addr)
		a.ready.Store(true)

		err := a.httpServer.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return
		}
		slog.Error("http server stopped unexpectedly", "error", err)
		os.Exit(1)
	}()

	go func() {
		defer stop()
		<-sigCtx.Done()

		slog.Info("termination signal received, draining")
		a.drain()
		close(done)
	}()

	return done
}

// drain marks the app unready and cancels the root context consumers run under.
func (a *App) drain() {
	a.ready.Store(false)
	if a.cancel != nil {
		a.cancel()
	}
}

// Stop shuts the HTTP server down, waits for background work, then runs the
// closers in registration order.
func (a *App) Stop(ctx context.Context) {
	a.drain()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to close resources", "name", "HTTP Server", "error", err)
	}

	if err := a.goroutine.Wait(); err != nil {
		slog.ErrorContext(ctx, "background workers exited with error", "error", err)
	}

	for _, c := range a.closers {
		if err := c.fn(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", c.name, "error", err)
		}
	}
	slog.InfoContext(ctx, "application stopped")
}
