package telemetry

import (
	"fmt"
	"log/slog"
	"net/http"
)

// StartMetricsServer serves handler on /metrics at addr. It blocks.
func StartMetricsServer(addr string, handler http.Handler) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	slog.Info("Starting metrics server", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}
