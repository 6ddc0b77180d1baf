package main

import (
	"compress/gzip"
	"fmt"
	"github.com/andywarui/rsheet/contracts"
	json "github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.etcd.io/bbolt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func TestBuildServiceContainer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := NewLogger(io.Discard, 0)

	t.Run("full", func(t *testing.T) {
		f, err := os.CreateTemp("", "db_*.db")
		assert.NoError(t, err)
		_ = f.Close()
		defer os.Remove(f.Name())

		serviceContainer, err := BuildServiceContainer(Config{
			ListenAddress: "127.0.0.1:0",
			HttpAddress:   "127.0.0.1:0",
			AuditDbPath:   f.Name(),
		}, logger)

		assert.NoError(t, err)
		defer serviceContainer.Close()

		// check database
		assert.NotNil(t, serviceContainer.Database)
		assert.IsType(t, &bbolt.DB{}, serviceContainer.Database)

		// check cell history
		assert.IsType(t, &CellHistoryRepository{}, serviceContainer.CellHistory)
		cellHistory := serviceContainer.CellHistory.(*CellHistoryRepository)
		assert.Equal(t, serviceContainer.Database, cellHistory.db)
		assert.IsType(t, &CellBinarySerializer{}, cellHistory.serializer)

		// check request dispatcher
		assert.IsType(t, &RequestDispatcher{}, serviceContainer.RequestDispatcher)
		dispatcher := serviceContainer.RequestDispatcher.(*RequestDispatcher)
		assert.Equal(t, serviceContainer.CellStore, dispatcher.store)
		assert.Equal(t, serviceContainer.ExpressionExecutor, dispatcher.executor)
		assert.Equal(t, serviceContainer.CellHistory, dispatcher.history)
		assert.Equal(t, serviceContainer.WebhookDispatcher, dispatcher.webhookDispatcher)
		assert.IsType(t, &CommandParser{}, dispatcher.parser)
		assert.IsType(t, &ExpressionResolver{}, dispatcher.resolver)

		// check transports
		assert.NotNil(t, serviceContainer.Server)
		assert.NotNil(t, serviceContainer.TcpManager)
		assert.NotNil(t, serviceContainer.WebsocketManager)

		// check api controller
		assert.IsType(t, &ApiController{}, serviceContainer.ApiController)
		apiController := serviceContainer.ApiController.(*ApiController)
		assert.Equal(t, serviceContainer.CellStore, apiController.CellStore)
		assert.Equal(t, serviceContainer.CellHistory, apiController.CellHistory)
		assert.Equal(t, serviceContainer.WebhookDispatcher, apiController.WebhookDispatcher)

		// check router
		assert.NotNil(t, serviceContainer.Router)
		routes := serviceContainer.Router.Routes()
		// 3 api routes + websocket + health check
		assert.Len(t, routes, 5)

		assert.NotNil(t, serviceContainer.HttpServer)
		assert.NotNil(t, serviceContainer.HttpListener)
	})

	t.Run("api_gzip", func(t *testing.T) {
		f, err := os.CreateTemp("", "db_*.db")
		assert.NoError(t, err)
		_ = f.Close()
		defer os.Remove(f.Name())

		serviceContainer, err := BuildServiceContainer(Config{
			ListenAddress: "127.0.0.1:0",
			HttpAddress:   "127.0.0.1:0",
			AuditDbPath:   f.Name(),
		}, logger)
		assert.NoError(t, err)
		defer serviceContainer.Close()

		for i := 1; i <= 100; i++ {
			assert.NoError(t, serviceContainer.CellHistory.Append("A1", fmt.Sprintf("%d * 1000", i), contracts.NewIntValue(int64(i*1000))))
		}

		request := func(path string) *httptest.ResponseRecorder {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, path, nil)
			req.Header.Set("Accept-Encoding", "gzip")
			serviceContainer.HttpServer.Handler.ServeHTTP(w, req)
			return w
		}

		w := request("/api/v1/cells/A1/history")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

		reader, err := gzip.NewReader(w.Body)
		assert.NoError(t, err)
		body, err := io.ReadAll(reader)
		assert.NoError(t, err)

		response := map[string]any{}
		assert.NoError(t, json.Unmarshal(body, &response))
		assert.Len(t, response["history"], 100)

		// small bodies stay uncompressed
		w = request("/api/v1/cells/A1")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Content-Encoding"))

		w = request("/healthcheck")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Content-Encoding"))
	})

	t.Run("minimal", func(t *testing.T) {
		serviceContainer, err := BuildServiceContainer(Config{ListenAddress: "127.0.0.1:0"}, logger)

		assert.NoError(t, err)
		defer serviceContainer.Close()

		assert.Nil(t, serviceContainer.Database)
		assert.Nil(t, serviceContainer.CellHistory)
		assert.Nil(t, serviceContainer.RequestDispatcher.(*RequestDispatcher).history)
		assert.Nil(t, serviceContainer.HttpServer)
		assert.Nil(t, serviceContainer.Router)
		assert.NotNil(t, serviceContainer.TcpManager)
	})

	t.Run("database error", func(t *testing.T) {
		serviceContainer, err := BuildServiceContainer(Config{
			ListenAddress: "127.0.0.1:0",
			AuditDbPath:   os.TempDir() + "/missing-dir/rsheet.db",
		}, logger)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no such file or directory")
		assert.NoError(t, serviceContainer.Close())
	})
}
