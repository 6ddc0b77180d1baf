package main

import (
	"encoding/binary"
	"fmt"
	"github.com/andywarui/rsheet/contracts"
	"go.etcd.io/bbolt"
)

var historyBucketPrefix = [4]byte{'_', '_', 'h', '_'}

// CellHistoryRepository journals every committed set, one bucket per cell, keyed by bucket sequence.
// It is never replayed into the cell store.
type CellHistoryRepository struct {
	db         *bbolt.DB
	serializer contracts.CellSerializer
}

func NewCellHistoryRepository(db *bbolt.DB, serializer contracts.CellSerializer) *CellHistoryRepository {
	return &CellHistoryRepository{
		db:         db,
		serializer: serializer,
	}
}

func (r *CellHistoryRepository) Append(cellId string, expression string, value contracts.CellValue) error {
	serializedData := r.serializer.Marshal(expression, value)

	return r.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(r.makeBucketId(cellId))
		if err != nil {
			return err
		}

		sequence, err := bucket.NextSequence()
		if err != nil {
			return err
		}

		return bucket.Put(binary.BigEndian.AppendUint64(nil, sequence), serializedData)
	})
}

func (r *CellHistoryRepository) History(cellId string) ([]contracts.CellHistoryEntry, error) {
	entries := make([]contracts.CellHistoryEntry, 0)

	err := r.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(r.makeBucketId(cellId))
		if bucket == nil {
			return nil
		}

		c := bucket.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			expression, value, err := r.serializer.Unmarshal(v)
			if err != nil {
				return fmt.Errorf("%s: %w", cellId, err)
			}

			entries = append(entries, contracts.CellHistoryEntry{
				Sequence:   binary.BigEndian.Uint64(k),
				Expression: expression,
				Value:      value,
			})
		}
		return nil
	})

	return entries, err
}

func (r *CellHistoryRepository) makeBucketId(cellId string) []byte {
	return append(historyBucketPrefix[:], cellId...)
}
