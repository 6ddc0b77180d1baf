package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"io"
	"log/slog"
	"net/http"
)

const ExitCodeMainError = 1

func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// RunApp serves until ctx is done or one of the listeners fails.
func RunApp(ctx context.Context, config Config, logger *slog.Logger) error {
	gin.SetMode(gin.ReleaseMode)

	serviceContainer, err := BuildServiceContainer(config, logger)
	if err != nil {
		_ = serviceContainer.Close()
		return err
	}
	defer serviceContainer.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	serviceContainer.WebhookDispatcher.Start()

	errs := make(chan error, 3)

	go func() {
		errs <- serviceContainer.Server.Serve(ctx, serviceContainer.TcpManager)
	}()
	logger.Info("command protocol listening", "address", serviceContainer.TcpManager.Addr().String())

	if serviceContainer.HttpServer != nil {
		go func() {
			errs <- serviceContainer.Server.Serve(ctx, serviceContainer.WebsocketManager)
		}()
		go func() {
			err := serviceContainer.HttpServer.Serve(serviceContainer.HttpListener)
			if errors.Is(err, http.ErrServerClosed) {
				err = nil
			}
			errs <- err
		}()
		logger.Info("http api listening", "address", serviceContainer.HttpListener.Addr().String())
	}

	select {
	case <-ctx.Done():
		return nil
	case err = <-errs:
		return err
	}
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
		return ExitCodeMainError
	}

	return 0
}
