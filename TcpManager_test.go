package main

import (
	"bufio"
	"context"
	"fmt"
	"github.com/andywarui/rsheet/contracts"
	"github.com/stretchr/testify/assert"
	"io"
	"net"
	"testing"
	"time"
)

func TestTcpManager(t *testing.T) {
	t.Run("line_protocol", func(t *testing.T) {
		manager, err := ListenTcp("127.0.0.1:0")
		assert.NoError(t, err)
		defer manager.Close()

		dispatcher, _ := _newTestDispatcher()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			_ = NewServer(dispatcher, NewLogger(io.Discard, 0)).Serve(ctx, manager)
		}()

		conn, err := net.DialTimeout("tcp", manager.Addr().String(), time.Second)
		assert.NoError(t, err)
		defer conn.Close()
		_ = conn.SetDeadline(time.Now().Add(5 * time.Second))

		replies := bufio.NewScanner(conn)
		send := func(command string) string {
			_, err := fmt.Fprint(conn, command+"\r\n")
			assert.NoError(t, err)
			assert.True(t, replies.Scan())
			return replies.Text()
		}

		assert.Equal(t, "5", send("set A1 5"))
		assert.Equal(t, "6", send("set B1 A1+1"))
		assert.Equal(t, "6", send("get B1"))
		assert.Equal(t, "no value", send("get C1"))
		assert.Equal(t, "ERROR: invalid command format", send("bogus"))
		assert.Equal(t, "ERROR: invalid cell name", send("get a1"))
		assert.Equal(t, `"hi there"`, send(`set D1 "hi there"`))
		assert.Equal(t, "ERROR: Expression error: Z1: cell has no value", send("set E1 Z1 * 2"))

		reply := send("set F1 nope +")
		assert.Contains(t, reply, "ERROR: Expression error: ")
	})

	t.Run("close_stops_accept", func(t *testing.T) {
		manager, err := ListenTcp("127.0.0.1:0")
		assert.NoError(t, err)

		assert.NoError(t, manager.Close())
		assert.NoError(t, manager.Close())

		conn, err := manager.Accept()
		assert.Nil(t, conn)
		assert.ErrorIs(t, err, contracts.ManagerClosedError)
	})

	t.Run("listen_error", func(t *testing.T) {
		_, err := ListenTcp("not-an-address")

		assert.Error(t, err)
	})
}
