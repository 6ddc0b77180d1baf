package main

import (
	"github.com/andywarui/rsheet/contracts"
	json "github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"io"
	"sync"
	"time"
)

const (
	writeWait = 10 * time.Second

	maxMessageSize = maxLineSize
)

// WebsocketManager turns upgraded HTTP requests into connections: one command per frame in,
// one JSON reply frame out.
type WebsocketManager struct {
	upgrader    websocket.Upgrader
	connections chan *websocketConnection
	closed      chan struct{}
	closeOnce   sync.Once
}

func NewWebsocketManager() *WebsocketManager {
	return &WebsocketManager{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		connections: make(chan *websocketConnection),
		closed:      make(chan struct{}),
	}
}

func (m *WebsocketManager) UpgradeAction(c *gin.Context) {
	conn, err := m.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader already replied with an HTTP error
		return
	}
	conn.SetReadLimit(maxMessageSize)

	select {
	case m.connections <- &websocketConnection{conn: conn}:
	case <-m.closed:
		_ = conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server is shutting down"),
			time.Now().Add(writeWait),
		)
		_ = conn.Close()
	}
}

func (m *WebsocketManager) Accept() (contracts.Connection, error) {
	select {
	case conn := <-m.connections:
		return conn, nil
	case <-m.closed:
		return nil, contracts.ManagerClosedError
	}
}

func (m *WebsocketManager) Close() error {
	m.closeOnce.Do(func() {
		close(m.closed)
	})
	return nil
}

type websocketConnection struct {
	conn *websocket.Conn
}

func (c *websocketConnection) ReadMessage() (string, error) {
	_, message, err := c.conn.ReadMessage()
	if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		return "", io.EOF
	}
	return string(message), err
}

func (c *websocketConnection) WriteMessage(reply contracts.Reply) error {
	payload, err := json.Marshal(reply)
	if err != nil {
		return err
	}

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, payload)
}

func (c *websocketConnection) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}

func (c *websocketConnection) Close() error {
	return c.conn.Close()
}
