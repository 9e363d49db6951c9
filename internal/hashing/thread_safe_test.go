package hashing

import (
	"sync"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// TestThreadSafeTable_Concurrent is designed to be run with -race.
func TestThreadSafeTable_Concurrent(t *testing.T) {
	table := NewThreadSafeTable(0)

	const workers = 8
	const perWorker = 100

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				hash := uint64(w*perWorker + i)
				table.Store(hash, 2, hash*10)
				if nodes, ok := table.Lookup(hash, 2); !ok || nodes != hash*10 {
					t.Errorf("Lookup(%d) = %d, %v", hash, nodes, ok)
				}
			}
		}(w)
	}
	wg.Wait()

	testutil.AssertEqual(t, table.Len(), workers*perWorker)
	testutil.AssertEqual(t, table.Hits(), workers*perWorker)

	table.Reset()
	testutil.AssertEqual(t, table.Len(), 0)
}

func TestThreadSafeTable_Capacity(t *testing.T) {
	table := NewThreadSafeTable(1)
	table.Store(1, 1, 1)
	table.Store(2, 1, 2)
	testutil.AssertEqual(t, table.Len(), 1)
}
