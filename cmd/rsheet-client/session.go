package main

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/peterh/liner"
	"io"
	"net"
	"strings"
)

var ConnectionClosedError = errors.New("connection closed by server")

// Session sends one command line and waits for its reply line.
type Session struct {
	conn    net.Conn
	replies *bufio.Scanner
}

func NewSession(conn net.Conn) *Session {
	return &Session{
		conn:    conn,
		replies: bufio.NewScanner(conn),
	}
}

func (s *Session) Send(command string) (string, error) {
	if _, err := fmt.Fprintln(s.conn, command); err != nil {
		return "", err
	}

	if !s.replies.Scan() {
		if err := s.replies.Err(); err != nil {
			return "", err
		}
		return "", ConnectionClosedError
	}

	return s.replies.Text(), nil
}

func (s *Session) Close() error {
	return s.conn.Close()
}

// RunPipe forwards every non blank line of in and prints each reply to out.
func RunPipe(session *Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		command := strings.TrimSpace(scanner.Text())
		if command == "" {
			continue
		}

		reply, err := session.Send(command)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, reply)
	}

	return scanner.Err()
}

func RunPrompt(session *Session, out io.Writer) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	for {
		line, err := cli.Prompt("rsheet> ")
		switch err {
		case nil:
		case liner.ErrPromptAborted, io.EOF:
			return nil
		default:
			return err
		}

		command := strings.TrimSpace(line)
		if command == "" {
			continue
		}
		cli.AppendHistory(command)

		reply, err := session.Send(command)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, reply)
	}
}
