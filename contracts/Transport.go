package contracts

import "errors"

var ManagerClosedError = errors.New("connection manager closed")

// Connection delivers raw command lines and carries replies back to one client.
type Connection interface {
	ReadMessage() (string, error)
	WriteMessage(reply Reply) error
	RemoteAddr() string
	Close() error
}

type ConnectionManager interface {
	Accept() (Connection, error)
	Close() error
}
