package main

import (
	"bufio"
	"errors"
	"github.com/andywarui/rsheet/contracts"
	"io"
	"net"
	"strings"
)

const maxLineSize = 1024 * 1024

// TcpManager serves the line protocol: one command per line in, one reply line out.
type TcpManager struct {
	listener net.Listener
}

func ListenTcp(address string) (*TcpManager, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, err
	}

	return &TcpManager{listener: listener}, nil
}

func (m *TcpManager) Addr() net.Addr {
	return m.listener.Addr()
}

func (m *TcpManager) Accept() (contracts.Connection, error) {
	conn, err := m.listener.Accept()
	if errors.Is(err, net.ErrClosed) {
		return nil, contracts.ManagerClosedError
	} else if err != nil {
		return nil, err
	}

	return newTcpConnection(conn), nil
}

func (m *TcpManager) Close() error {
	err := m.listener.Close()
	if errors.Is(err, net.ErrClosed) {
		return nil
	}
	return err
}

type tcpConnection struct {
	conn    net.Conn
	scanner *bufio.Scanner
	writer  *bufio.Writer
}

func newTcpConnection(conn net.Conn) *tcpConnection {
	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	return &tcpConnection{
		conn:    conn,
		scanner: scanner,
		writer:  bufio.NewWriter(conn),
	}
}

func (c *tcpConnection) ReadMessage() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return strings.TrimSuffix(c.scanner.Text(), "\r"), nil
}

func (c *tcpConnection) WriteMessage(reply contracts.Reply) error {
	if _, err := c.writer.WriteString(reply.String() + "\n"); err != nil {
		return err
	}
	return c.writer.Flush()
}

func (c *tcpConnection) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}

func (c *tcpConnection) Close() error {
	return c.conn.Close()
}
