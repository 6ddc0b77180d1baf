package main

import (
	"github.com/andywarui/rsheet/contracts"
	"regexp"
	"strings"
)

type CommandParser struct {
	commandRegex *regexp.Regexp
}

func NewCommandParser() *CommandParser {
	return &CommandParser{
		// keyword, word-shaped cell id, then the expression verbatim; whitespace before it is optional
		commandRegex: regexp.MustCompile(`(?s)^(\S+)\s+(\w+)\s*(.*)$`),
	}
}

func (p *CommandParser) Parse(message string) (command contracts.Command, err error) {
	matches := p.commandRegex.FindStringSubmatch(strings.TrimSpace(message))
	if matches == nil {
		return command, contracts.InvalidCommandFormatError
	}

	keyword, cellId, expression := matches[1], matches[2], matches[3]

	switch keyword {
	case contracts.GetKeyword:
		if expression != "" {
			return command, contracts.InvalidCommandFormatError
		}
		command.Type = contracts.GetCommand
	case contracts.SetKeyword:
		command.Type = contracts.SetCommand
		command.Expression = expression
	default:
		return command, contracts.InvalidCommandFormatError
	}

	if !IsCellIdentifier(cellId) {
		return contracts.Command{}, contracts.InvalidCellNameError
	}

	command.CellId = cellId
	return
}
