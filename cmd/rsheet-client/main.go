package main

import (
	"fmt"
	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
	"net"
	"os"
)

const usage = `rsheet-client

Usage:
  rsheet-client [--addr=<addr>]
  rsheet-client -h | --help

Options:
  --addr=<addr>  Address of the rsheet command protocol [default: localhost:6991].
  -h, --help     Display this help.

When stdin is a terminal commands are read from a prompt with history,
otherwise one command per line is read from stdin.
`

func main() {
	os.Exit(run())
}

func run() int {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	addr, _ := opts.String("--addr")

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		return 1
	}

	session := NewSession(conn)
	defer session.Close()

	if isatty.IsTerminal(os.Stdin.Fd()) {
		err = RunPrompt(session, os.Stdout)
	} else {
		err = RunPipe(session, os.Stdin, os.Stdout)
	}

	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}
