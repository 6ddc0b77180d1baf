package main

import (
	"errors"
	"github.com/NYTimes/gziphandler"
	"github.com/andywarui/rsheet/contracts"
	"github.com/gin-gonic/gin"
	"go.etcd.io/bbolt"
	"log/slog"
	"net"
	"net/http"
	"time"
)

type ServiceContainer struct {
	Logger             *slog.Logger
	Database           *bbolt.DB
	CellStore          contracts.CellStore
	ExpressionExecutor contracts.ExpressionExecutor
	CellHistory        contracts.CellHistoryRepository
	WebhookDispatcher  contracts.WebhookDispatcher
	RequestDispatcher  contracts.RequestDispatcher
	Server             *Server
	TcpManager         *TcpManager
	WebsocketManager   *WebsocketManager
	ApiController      contracts.ApiController
	Router             *gin.Engine
	HttpListener       net.Listener
	HttpServer         *http.Server
}

func BuildServiceContainer(config Config, logger *slog.Logger) (container *ServiceContainer, err error) {
	container = &ServiceContainer{Logger: logger}

	if config.AuditDbPath != "" {
		container.Database, err = bbolt.Open(config.AuditDbPath, 0600, &bbolt.Options{Timeout: time.Second})
		if err != nil {
			return container, err
		}
		container.CellHistory = NewCellHistoryRepository(container.Database, NewCellBinarySerializer())
	}

	cellStore := NewCellStore()
	container.CellStore = cellStore
	container.ExpressionExecutor = NewExpressionExecutor()
	container.WebhookDispatcher = NewWebhookDispatcher(logger)

	dispatcher := NewRequestDispatcher(
		NewCommandParser(), cellStore, NewExpressionResolver(cellStore), container.ExpressionExecutor, logger,
	).WithWebhookDispatcher(container.WebhookDispatcher)
	if container.CellHistory != nil {
		dispatcher.WithHistory(container.CellHistory)
	}
	container.RequestDispatcher = dispatcher

	container.Server = NewServer(container.RequestDispatcher, logger)

	container.TcpManager, err = ListenTcp(config.ListenAddress)
	if err != nil {
		return container, err
	}

	if config.HttpAddress != "" {
		container.WebsocketManager = NewWebsocketManager()
		container.ApiController = NewApiController(container.CellStore, container.CellHistory, container.WebhookDispatcher)
		container.Router = SetupRouter(container.ApiController, container.WebsocketManager.UpgradeAction)

		container.HttpListener, err = net.Listen("tcp", config.HttpAddress)
		if err != nil {
			return container, err
		}

		handler := http.NewServeMux()
		handler.Handle("/api/", gziphandler.GzipHandler(container.Router))
		handler.Handle("/", container.Router)

		container.HttpServer = &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	return container, nil
}

// Close releases everything BuildServiceContainer opened, including a partially built container.
func (container *ServiceContainer) Close() error {
	var errs []error

	if container.HttpServer != nil {
		errs = append(errs, container.HttpServer.Close())
	} else if container.HttpListener != nil {
		errs = append(errs, container.HttpListener.Close())
	}
	if container.WebsocketManager != nil {
		errs = append(errs, container.WebsocketManager.Close())
	}
	if container.TcpManager != nil {
		errs = append(errs, container.TcpManager.Close())
	}
	if container.WebhookDispatcher != nil {
		container.WebhookDispatcher.Close()
	}
	if container.Database != nil {
		errs = append(errs, container.Database.Close())
	}

	return errors.Join(errs...)
}
