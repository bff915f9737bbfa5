package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"turfzone/internal/web"
)

// listenAndServe runs the HTTP server. Tests replace it.
var listenAndServe = func(ctx context.Context, srv *web.Server, addr string) error {
	return srv.ListenAndServe(ctx, addr)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the turf listing and booking API over HTTP",
	Long: `Start an HTTP server exposing:
  GET  /healthz
  GET  /api/categories
  GET  /api/turfs?category=Football
  POST /api/bookings
  GET  /metrics`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Listen address (default 127.0.0.1:8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	rt, err := openRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	s := rt.Settings
	srv := web.NewServer(web.Config{
		Lookup:      rt.Service,
		Session:     rt.Session,
		Generator:   rt.Generator,
		Metrics:     rt.Metrics,
		Categories:  s.Categories,
		Category:    s.Category,
		CORSOrigins: s.CORSOrigins,
		Logger:      rt.Logger,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return listenAndServe(ctx, srv, s.ServeAddr)
}
