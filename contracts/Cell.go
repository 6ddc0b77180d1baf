package contracts

import (
	"errors"
	json "github.com/bytedance/sonic"
	"strconv"
)

type CellKind uint8

const (
	NoneKind CellKind = iota
	IntKind
	FloatKind
	StringKind
	BoolKind
)

const NoValueText = "no value"

var cellKindNames = [...]string{"none", "int", "float", "string", "bool"}

var InvalidCellNameError = errors.New("invalid cell name")

func (k CellKind) String() string {
	if int(k) < len(cellKindNames) {
		return cellKindNames[k]
	}

	return "unknown"
}

// CellValue is a tagged scalar. The zero value is the absent value of a cell that was never set.
type CellValue struct {
	Kind       CellKind
	IntValue   int64
	FloatValue float64
	TextValue  string
	BoolValue  bool
}

var NoneValue = CellValue{}

func NewIntValue(value int64) CellValue {
	return CellValue{Kind: IntKind, IntValue: value}
}

func NewFloatValue(value float64) CellValue {
	return CellValue{Kind: FloatKind, FloatValue: value}
}

func NewStringValue(value string) CellValue {
	return CellValue{Kind: StringKind, TextValue: value}
}

func NewBoolValue(value bool) CellValue {
	return CellValue{Kind: BoolKind, BoolValue: value}
}

func (v CellValue) IsNone() bool {
	return v.Kind == NoneKind
}

// Native returns the value as a plain Go scalar, nil for None.
func (v CellValue) Native() any {
	switch v.Kind {
	case IntKind:
		return int(v.IntValue)
	case FloatKind:
		return v.FloatValue
	case StringKind:
		return v.TextValue
	case BoolKind:
		return v.BoolValue
	default:
		return nil
	}
}

func (v CellValue) String() string {
	switch v.Kind {
	case IntKind:
		return strconv.FormatInt(v.IntValue, 10)
	case FloatKind:
		return strconv.FormatFloat(v.FloatValue, 'f', -1, 64)
	case StringKind:
		return strconv.Quote(v.TextValue)
	case BoolKind:
		return strconv.FormatBool(v.BoolValue)
	default:
		return NoValueText
	}
}

type cellValueJson struct {
	Kind  string `json:"kind"`
	Value any    `json:"value,omitempty"`
}

func (v CellValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(cellValueJson{Kind: v.Kind.String(), Value: v.Native()})
}

// Variables binds cell identifiers to their current values for one evaluation.
type Variables map[string]CellValue
