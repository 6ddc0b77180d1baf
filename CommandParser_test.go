package main

import (
	"github.com/andywarui/rsheet/contracts"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCommandParser_Parse(t *testing.T) {
	parser := NewCommandParser()

	t.Run("get", func(t *testing.T) {
		command, err := parser.Parse("get A1")

		assert.NoError(t, err)
		assert.Equal(t, contracts.Command{Type: contracts.GetCommand, CellId: "A1"}, command)
	})

	t.Run("get_with_surrounding_whitespace", func(t *testing.T) {
		command, err := parser.Parse("  \tget   BC12 \r\n")

		assert.NoError(t, err)
		assert.Equal(t, contracts.Command{Type: contracts.GetCommand, CellId: "BC12"}, command)
	})

	t.Run("set", func(t *testing.T) {
		command, err := parser.Parse("set B1 A1+1")

		assert.NoError(t, err)
		assert.Equal(t, contracts.Command{Type: contracts.SetCommand, CellId: "B1", Expression: "A1+1"}, command)
	})

	t.Run("set_expression_keeps_inner_whitespace", func(t *testing.T) {
		command, err := parser.Parse("set  C3   A1  *  (B2 + 4)  ")

		assert.NoError(t, err)
		assert.Equal(t, "A1  *  (B2 + 4)", command.Expression)
	})

	t.Run("set_expression_adjacent_to_cell", func(t *testing.T) {
		command, err := parser.Parse("set A1+1")

		assert.NoError(t, err)
		assert.Equal(t, contracts.Command{Type: contracts.SetCommand, CellId: "A1", Expression: "+1"}, command)

		command, err = parser.Parse("set B2=5")

		assert.NoError(t, err)
		assert.Equal(t, contracts.Command{Type: contracts.SetCommand, CellId: "B2", Expression: "=5"}, command)
	})

	t.Run("set_without_expression", func(t *testing.T) {
		command, err := parser.Parse("set A1")

		assert.NoError(t, err)
		assert.Equal(t, contracts.SetCommand, command.Type)
		assert.Equal(t, "", command.Expression)
	})

	t.Run("invalid_command_format", func(t *testing.T) {
		for _, message := range []string{"", "   ", "bogus", "get", "set", "GET A1", "Set A1 5", "put A1 5", "get A1 extra", "get A1+1", "getA1", "get $A$1"} {
			_, err := parser.Parse(message)
			assert.ErrorIs(t, err, contracts.InvalidCommandFormatError, message)
			assert.EqualError(t, err, "invalid command format", message)
		}
	})

	t.Run("invalid_cell_name", func(t *testing.T) {
		for _, message := range []string{"get a1", "get A01", "get A1B", "set A0 5", "set 1A 5", "set a1=5", "get A_1"} {
			command, err := parser.Parse(message)
			assert.ErrorIs(t, err, contracts.InvalidCellNameError, message)
			assert.EqualError(t, err, "invalid cell name", message)
			assert.Equal(t, contracts.Command{}, command)
		}
	})
}
