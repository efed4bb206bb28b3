package app

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/atomic"
)

const defaultStartupTimeout = 30 * time.Second

type healthResponse struct {
	Status string `json:"status"`
}

// healthHandler reports 200 once the server is serving and 503 while starting or draining.
func healthHandler(ready *atomic.Bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		code, status := http.StatusOK, "ok"
		if !ready.Load() {
			code, status = http.StatusServiceUnavailable, "unavailable"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		//nolint:errcheck,gosec // response already committed
		json.NewEncoder(w).Encode(healthResponse{Status: status})
	})
}

func (a *App) startupTimeout() time.Duration {
	if d := a.config.GetSecond("app.startup_timeout_seconds"); d > 0 {
		return d
	}
	return defaultStartupTimeout
}

// pingWithRetry retries ping with a capped fibonacci backoff until it succeeds or limit passes.
func pingWithRetry(ctx context.Context, name string, limit time.Duration, ping func(context.Context) error) error {
	b := retry.NewFibonacci(200 * time.Millisecond)
	b = retry.WithCappedDuration(2*time.Second, b)
	b = retry.WithMaxDuration(limit, b)

	return retry.Do(ctx, b, func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		if err := ping(pingCtx); err != nil {
			slog.WarnContext(ctx, "dependency not ready, retrying", "name", name, "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
}
