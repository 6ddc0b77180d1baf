package contracts

type CellStore interface {
	Set(cellId string, value CellValue)
	Get(cellId string) CellValue
	// GetMany reads all requested cells under one lock acquisition. Cells never set are omitted.
	GetMany(cellIds []string) Variables
}
