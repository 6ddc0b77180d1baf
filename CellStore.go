package main

import (
	"github.com/andywarui/rsheet/contracts"
	"sync"
)

// CellStore is the in-memory sheet shared by every connection.
// Each operation holds the lock for a single map access only.
type CellStore struct {
	mu    sync.RWMutex
	cells map[string]contracts.CellValue
}

func NewCellStore() *CellStore {
	return &CellStore{
		cells: make(map[string]contracts.CellValue),
	}
}

func (s *CellStore) Set(cellId string, value contracts.CellValue) {
	s.mu.Lock()
	s.cells[cellId] = value
	s.mu.Unlock()
}

func (s *CellStore) Get(cellId string) contracts.CellValue {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cells[cellId]
}

func (s *CellStore) GetMany(cellIds []string) contracts.Variables {
	vars := make(contracts.Variables, len(cellIds))

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, cellId := range cellIds {
		if value, ok := s.cells[cellId]; ok {
			vars[cellId] = value
		}
	}

	return vars
}
