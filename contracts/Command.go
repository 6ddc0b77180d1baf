package contracts

import "errors"

type CommandType uint8

const (
	GetCommand CommandType = iota + 1
	SetCommand
)

const GetKeyword = "get"
const SetKeyword = "set"

type Command struct {
	Type       CommandType
	CellId     string
	Expression string
}

var InvalidCommandFormatError = errors.New("invalid command format")

type CommandParser interface {
	Parse(message string) (Command, error)
}
