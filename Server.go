package main

import (
	"context"
	"errors"
	"github.com/andywarui/rsheet/contracts"
	"github.com/google/uuid"
	"io"
	"log/slog"
)

type Server struct {
	dispatcher contracts.RequestDispatcher
	logger     *slog.Logger
}

func NewServer(dispatcher contracts.RequestDispatcher, logger *slog.Logger) *Server {
	return &Server{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Serve accepts connections until ctx is done or the manager is closed.
// Every connection is serviced in its own goroutine against the shared cell store.
func (s *Server) Serve(ctx context.Context, manager contracts.ConnectionManager) error {
	stop := context.AfterFunc(ctx, func() {
		_ = manager.Close()
	})
	defer stop()

	for {
		conn, err := manager.Accept()
		if errors.Is(err, contracts.ManagerClosedError) {
			return nil
		} else if err != nil {
			return err
		}

		go func() {
			_ = s.ServeConnection(conn)
		}()
	}
}

// ServeConnection handles one command to completion, reply included, before reading the next.
// Only a transport failure ends the loop; a clean EOF returns nil.
func (s *Server) ServeConnection(conn contracts.Connection) error {
	defer conn.Close()

	logger := s.logger.With("connection_id", uuid.NewString(), "remote_addr", conn.RemoteAddr())
	logger.Info("connection accepted")

	for {
		message, err := conn.ReadMessage()
		if errors.Is(err, io.EOF) {
			logger.Info("connection closed")
			return nil
		} else if err != nil {
			logger.Warn("read failed", "error", err)
			return err
		}

		logger.Debug("message received", "message", message)

		reply := s.dispatcher.Dispatch(message)

		if err = conn.WriteMessage(reply); err != nil {
			logger.Warn("write failed", "error", err)
			return err
		}
	}
}
