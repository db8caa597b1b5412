package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/light-bringer/inventory-service/internal/pkg/config"
	"github.com/light-bringer/inventory-service/internal/services"
)

func main() {
	app := &cli.App{
		Name:  "inventory-server",
		Usage: "inventory transaction service HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "spanner-database",
				Usage: "full Spanner database path (overrides INVENTORY_SPANNER_DATABASE)",
			},
			&cli.StringFlag{
				Name:  "port",
				Usage: "HTTP listen port (overrides INVENTORY_HTTP_PORT)",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}

func run(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if v := c.String("spanner-database"); v != "" {
		cfg.SpannerDatabase = v
	}
	if v := c.String("port"); v != "" {
		cfg.HTTPPort = v
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}
	logrus.SetLevel(level)

	logrus.WithFields(logrus.Fields{
		"database":             cfg.SpannerDatabase,
		"port":                 cfg.HTTPPort,
		"family_delete_policy": cfg.FamilyDeletePolicy,
	}).Info("starting inventory service")

	serviceOpts, err := services.NewServiceOptions(ctx, cfg)
	if err != nil {
		return errors.Wrap(err, "failed to initialize service")
	}
	defer serviceOpts.Close()

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: serviceOpts.Handler,
	}

	go func() {
		logrus.WithField("addr", server.Addr).Info("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("HTTP server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logrus.Info("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "HTTP server shutdown")
	}
	return nil
}
