package main

import (
	"errors"
	"fmt"
	"github.com/docopt/docopt-go"
	"log/slog"
)

const DefaultListenAddress = ":6991"

const usage = `rsheet

Usage:
  rsheet [--listen=<addr>] [--http=<addr>] [--audit-db=<path>] [--log-level=<level>]
  rsheet -h | --help

Options:
  --listen=<addr>      TCP address of the command protocol (env RSHEET_LISTEN, default :6991).
  --http=<addr>        Address of the HTTP API and websocket endpoint (env RSHEET_HTTP, disabled when empty).
  --audit-db=<path>    bbolt file journaling every successful set (env RSHEET_AUDIT_DB, disabled when empty).
  --log-level=<level>  debug, info, warn or error (env RSHEET_LOG_LEVEL, default info).
  -h, --help           Display this help.
`

type Config struct {
	ListenAddress string
	HttpAddress   string
	AuditDbPath   string
	LogLevel      slog.Level
}

var InvalidConfigError = errors.New("invalid configuration")

var configParser = &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}

// ParseConfig reads options from argv, then from the environment, then falls back to defaults.
func ParseConfig(argv []string, getenv func(string) string) (config Config, err error) {
	opts, err := configParser.ParseArgs(usage, argv, "")
	if err != nil {
		return config, fmt.Errorf("%w: %w", InvalidConfigError, err)
	}

	option := func(name string, env string, defaultValue string) string {
		if value, _ := opts.String(name); value != "" {
			return value
		}
		if value := getenv(env); value != "" {
			return value
		}
		return defaultValue
	}

	config.ListenAddress = option("--listen", "RSHEET_LISTEN", DefaultListenAddress)
	config.HttpAddress = option("--http", "RSHEET_HTTP", "")
	config.AuditDbPath = option("--audit-db", "RSHEET_AUDIT_DB", "")

	logLevel := option("--log-level", "RSHEET_LOG_LEVEL", "info")
	if err = config.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return config, fmt.Errorf("%w: log level %q", InvalidConfigError, logLevel)
	}

	return config, nil
}
