package main

import (
	"github.com/andywarui/rsheet/contracts"
	"github.com/andywarui/rsheet/mocks"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestExpressionResolver_Resolve(t *testing.T) {
	t.Run("reads_referenced_cells_once", func(t *testing.T) {
		store := mocks.NewCellStore(t)
		store.On("GetMany", []string{"A1", "B2"}).Return(contracts.Variables{"A1": contracts.NewIntValue(3)}).Once()

		resolver := NewExpressionResolver(store)
		vars := resolver.Resolve("A1 * B2 + A1")

		assert.Equal(t, contracts.Variables{"A1": contracts.NewIntValue(3)}, vars)
	})

	t.Run("real_store", func(t *testing.T) {
		store := NewCellStore()
		store.Set("A1", contracts.NewIntValue(5))
		store.Set("Z9", contracts.NewIntValue(9))

		resolver := NewExpressionResolver(store)

		assert.Equal(t, contracts.Variables{"A1": contracts.NewIntValue(5)}, resolver.Resolve("A1 + C1"))
		assert.Empty(t, resolver.Resolve("1 + 2"))
	})
}

func TestExpressionResolver_ExtractCellIds(t *testing.T) {
	resolver := NewExpressionResolver(NewCellStore())

	assert.Equal(t, []string{"A1", "B1"}, resolver.ExtractCellIds("A1 + B1 + A1"))
	assert.Empty(t, resolver.ExtractCellIds("\"text\" + 'more'"))
}
