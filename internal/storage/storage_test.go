package storage

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/testutil"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCache_GetMissing(t *testing.T) {
	c := newTestCache(t)

	nodes, ok, err := c.Get(Key{FEN: startFEN, Depth: 3})
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, ok, "empty cache should miss")
	testutil.AssertEqual(t, nodes, uint64(0))
}

func TestCache_PutGet(t *testing.T) {
	c := newTestCache(t)

	stored := Key{FEN: startFEN, Depth: 3}
	testutil.AssertNoError(t, c.Put(stored, 8902))

	tests := []struct {
		name   string
		key    Key
		want   uint64
		wantOK bool
	}{
		{"same key", stored, 8902, true},
		{"other depth", Key{FEN: startFEN, Depth: 2}, 0, false},
		{"push limit", Key{FEN: startFEN, Depth: 3, PushLimit: 3}, 0, false},
		{"chess960", Key{FEN: startFEN, Depth: 3, Castle960: true}, 0, false},
		{"other position", Key{FEN: "4k3/8/8/8/8/8/8/4K3 w - - 0 1", Depth: 3}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, ok, err := c.Get(tt.key)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, ok, tt.wantOK)
			testutil.AssertEqual(t, nodes, tt.want)
		})
	}
}

func TestCache_Overwrite(t *testing.T) {
	c := newTestCache(t)
	k := Key{FEN: startFEN, Depth: 1}

	testutil.AssertNoError(t, c.Put(k, 1))
	testutil.AssertNoError(t, c.Put(k, 20))

	nodes, ok, err := c.Get(k)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, ok, "stored key")
	testutil.AssertEqual(t, nodes, uint64(20))
}

func TestCache_Persists(t *testing.T) {
	dir := t.TempDir()
	k := Key{FEN: startFEN, Depth: 4}

	c, err := Open(dir)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, c.Put(k, 197281))
	testutil.AssertNoError(t, c.Close())

	c, err = Open(dir)
	testutil.AssertNoError(t, err)
	defer c.Close()

	nodes, ok, err := c.Get(k)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, ok, "value survives reopen")
	testutil.AssertEqual(t, nodes, uint64(197281))
}

func TestKeyBytes(t *testing.T) {
	k := Key{FEN: "8/8/8/8/8/8/8/K6k w - - 0 1", Depth: 2, PushLimit: 3, Castle960: true}
	testutil.AssertEqual(t, string(k.bytes()), "perft|3|1|8/8/8/8/8/8/8/K6k w - - 0 1|2")
}
