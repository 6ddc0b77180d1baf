package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"github.com/andywarui/rsheet/contracts"
	"math"
)

var SerializerError = errors.New("invalid serialized data")

const expressionLengthSize = 4

// CellBinarySerializer layout: uint32 expression length, expression, kind byte, kind payload.
type CellBinarySerializer struct {
}

func NewCellBinarySerializer() *CellBinarySerializer {
	return &CellBinarySerializer{}
}

func (s *CellBinarySerializer) Marshal(expression string, value contracts.CellValue) []byte {
	expressionBytes := []byte(expression)

	serializedData := make([]byte, 0, expressionLengthSize+len(expressionBytes)+1+8+len(value.TextValue))

	serializedData = binary.LittleEndian.AppendUint32(serializedData, uint32(len(expressionBytes)))
	serializedData = append(serializedData, expressionBytes...)
	serializedData = append(serializedData, byte(value.Kind))

	switch value.Kind {
	case contracts.IntKind:
		serializedData = binary.LittleEndian.AppendUint64(serializedData, uint64(value.IntValue))
	case contracts.FloatKind:
		serializedData = binary.LittleEndian.AppendUint64(serializedData, math.Float64bits(value.FloatValue))
	case contracts.StringKind:
		serializedData = append(serializedData, []byte(value.TextValue)...)
	case contracts.BoolKind:
		if value.BoolValue {
			serializedData = append(serializedData, 1)
		} else {
			serializedData = append(serializedData, 0)
		}
	}

	return serializedData
}

func (s *CellBinarySerializer) Unmarshal(data []byte) (expression string, value contracts.CellValue, err error) {
	if len(data) < expressionLengthSize+1 {
		return "", contracts.NoneValue, fmt.Errorf("%w: should be at least %d bytes (data: %v)", SerializerError, expressionLengthSize+1, string(data))
	}

	expressionLength := int(binary.LittleEndian.Uint32(data))
	if expressionLength > len(data)-expressionLengthSize-1 {
		return "", contracts.NoneValue, fmt.Errorf("%w: expression size is less than bytes amount (expressionSize: %d; data: %v)", SerializerError, expressionLength, string(data))
	}

	kindOffset := expressionLengthSize + expressionLength
	kind := contracts.CellKind(data[kindOffset])
	payload := data[kindOffset+1:]

	switch kind {
	case contracts.NoneKind:
		value = contracts.NoneValue
	case contracts.IntKind, contracts.FloatKind:
		if len(payload) != 8 {
			return "", contracts.NoneValue, fmt.Errorf("%w: %s payload should be 8 bytes, got %d", SerializerError, kind, len(payload))
		}
		bits := binary.LittleEndian.Uint64(payload)
		if kind == contracts.IntKind {
			value = contracts.NewIntValue(int64(bits))
		} else {
			value = contracts.NewFloatValue(math.Float64frombits(bits))
		}
	case contracts.StringKind:
		value = contracts.NewStringValue(string(payload))
	case contracts.BoolKind:
		if len(payload) != 1 {
			return "", contracts.NoneValue, fmt.Errorf("%w: bool payload should be 1 byte, got %d", SerializerError, len(payload))
		}
		value = contracts.NewBoolValue(payload[0] == 1)
	default:
		return "", contracts.NoneValue, fmt.Errorf("%w: unknown cell kind %d", SerializerError, kind)
	}

	expression = string(data[expressionLengthSize:kindOffset])
	return
}
