package contracts

import (
	json "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCellValue_String(t *testing.T) {
	testCases := map[string]CellValue{
		"no value":    NoneValue,
		"5":           NewIntValue(5),
		"-17":         NewIntValue(-17),
		"2.5":         NewFloatValue(2.5),
		"6":           NewFloatValue(6),
		`"hi"`:        NewStringValue("hi"),
		`"two\nline"`: NewStringValue("two\nline"),
		"true":        NewBoolValue(true),
		"false":       NewBoolValue(false),
	}

	for expected, value := range testCases {
		assert.Equal(t, expected, value.String())
	}
}

func TestCellValue_Native(t *testing.T) {
	assert.Nil(t, NoneValue.Native())
	assert.Equal(t, 5, NewIntValue(5).Native())
	assert.Equal(t, 2.5, NewFloatValue(2.5).Native())
	assert.Equal(t, "x", NewStringValue("x").Native())
	assert.Equal(t, false, NewBoolValue(false).Native())
}

func TestCellValue_MarshalJSON(t *testing.T) {
	testCases := map[string]CellValue{
		`{"kind":"none"}`:               NoneValue,
		`{"kind":"int","value":0}`:      NewIntValue(0),
		`{"kind":"float","value":1.5}`:  NewFloatValue(1.5),
		`{"kind":"string","value":"x"}`: NewStringValue("x"),
		`{"kind":"bool","value":false}`: NewBoolValue(false),
	}

	for expected, value := range testCases {
		actual, err := json.Marshal(value)

		assert.NoError(t, err)
		assert.JSONEq(t, expected, string(actual))
	}
}

func TestCellKind_String(t *testing.T) {
	assert.Equal(t, "int", IntKind.String())
	assert.Equal(t, "unknown", CellKind(200).String())
}
