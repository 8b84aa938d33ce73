package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"measure_service/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	readTimeout = 15 * time.Second
	// covers the analysis call plus the store write
	writeTimeoutMargin = 15 * time.Second
)

func newHTTPServer(cfg *config.Config, router *gin.Engine) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: readTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      cfg.Analysis.Timeout + writeTimeoutMargin,
	}
}

func startHTTPServer(lc fx.Lifecycle, srv *http.Server, logger *zap.Logger) {
	log := logger.Named("http")
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				log.Info("server listening", zap.String("addr", srv.Addr))
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server error", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down server")
			return srv.Shutdown(ctx)
		},
	})
}
