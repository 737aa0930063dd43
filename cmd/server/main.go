package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	bootstrap "github.com/tbeaudouin05/stripe-fivem-relay/api/bootstrap"
	config "github.com/tbeaudouin05/stripe-fivem-relay/api/config"
	grpcserver "github.com/tbeaudouin05/stripe-fivem-relay/api/grpcserver"
	logging "github.com/tbeaudouin05/stripe-fivem-relay/api/logging"
	router "github.com/tbeaudouin05/stripe-fivem-relay/api/router"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logging.New(cfg.Log)
	svc := bootstrap.Init(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpSrv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router.NewRouter(cfg, svc),
		ReadHeaderTimeout: 5 * time.Second,
	}

	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		return err
	}
	grpcSrv := grpcserver.New()

	errCh := make(chan error, 2)
	go func() {
		slog.Info("http server listening", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	go func() {
		slog.Info("grpc server listening", "addr", lis.Addr().String())
		if err := grpcSrv.Serve(lis); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	case err = <-errCh:
		slog.Error("server failed", "error", err)
	}

	grpcSrv.Drain()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if serr := httpSrv.Shutdown(shutdownCtx); serr != nil {
		slog.Error("http shutdown", "error", serr)
	}

	done := make(chan struct{})
	go func() {
		grpcSrv.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-shutdownCtx.Done():
		grpcSrv.ForceStop()
	}
	slog.Info("server stopped")
	return err
}
