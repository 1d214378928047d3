package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"threadline/internal/config"
	"threadline/internal/core"
)

type HTTPServer struct {
	Logger *slog.Logger
	Config *config.Config
	DB     core.DB

	server *http.Server
}

func (s *HTTPServer) Init(_ context.Context) error {
	s.Logger = s.Logger.With("component", "metrics.HTTPServer")

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		sqlDB, err := s.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(r.Context())
		}
		if err != nil {
			s.Logger.Error("health check failed", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
		}
	})

	s.server = &http.Server{
		Handler:           mux,
		Addr:              s.Config.MetricsAddr,
		ReadHeaderTimeout: time.Second,
	}
	return nil
}

func (s *HTTPServer) Run(ctx context.Context) error {
	s.Logger.Info("Starting metrics server", "addr", s.server.Addr)

	go func() {
		<-ctx.Done()
		s.server.Shutdown(context.TODO()) //nolint:errcheck
	}()

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
