package contracts

import "errors"

type CellHistoryEntry struct {
	Sequence   uint64    `json:"sequence"`
	Expression string    `json:"expression"`
	Value      CellValue `json:"value"`
}

var CellHistoryDisabledError = errors.New("cell history is disabled")

type CellHistoryRepository interface {
	Append(cellId string, expression string, value CellValue) error
	History(cellId string) ([]CellHistoryEntry, error)
}

type CellSerializer interface {
	Marshal(expression string, value CellValue) []byte
	Unmarshal([]byte) (expression string, value CellValue, err error)
}
