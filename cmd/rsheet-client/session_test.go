package main

import (
	"bufio"
	"bytes"
	"github.com/stretchr/testify/assert"
	"net"
	"strings"
	"testing"
)

// _echoServer answers every line with "reply: <line>" and hangs up after stopAfter lines.
func _echoServer(conn net.Conn, stopAfter int) {
	defer conn.Close()

	lines := bufio.NewScanner(conn)
	for i := 0; i < stopAfter && lines.Scan(); i++ {
		_, _ = conn.Write([]byte("reply: " + lines.Text() + "\n"))
	}
}

func TestSession_Send(t *testing.T) {
	client, server := net.Pipe()
	go _echoServer(server, 1)

	session := NewSession(client)
	defer session.Close()

	reply, err := session.Send("get A1")
	assert.NoError(t, err)
	assert.Equal(t, "reply: get A1", reply)

	_, err = session.Send("get A2")
	assert.Error(t, err)
}

func TestRunPipe(t *testing.T) {
	client, server := net.Pipe()
	go _echoServer(server, 10)

	session := NewSession(client)
	defer session.Close()

	var out bytes.Buffer
	err := RunPipe(session, strings.NewReader("set A1 5\n\n  get A1  \n"), &out)

	assert.NoError(t, err)
	assert.Equal(t, "reply: set A1 5\nreply: get A1\n", out.String())
}
