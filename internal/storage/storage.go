// Package storage keeps perft node counts in BadgerDB so repeated runs over
// the same position skip the enumeration.
package storage

import (
	"encoding/binary"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Key identifies one perft count. The rule switches are part of the key
// since they change the move tree.
type Key struct {
	FEN       string
	Depth     int
	PushLimit int
	Castle960 bool
}

func (k Key) bytes() []byte {
	castle := 0
	if k.Castle960 {
		castle = 1
	}
	return []byte(fmt.Sprintf("perft|%d|%d|%s|%d", k.PushLimit, castle, k.FEN, k.Depth))
}

// Cache wraps BadgerDB for perft results.
type Cache struct {
	db *badger.DB
}

// Open opens or creates a cache in dir.
func Open(dir string) (*Cache, error) {
	return open(badger.DefaultOptions(dir))
}

// OpenInMemory creates a cache that lives only as long as the process.
func OpenInMemory() (*Cache, error) {
	return open(badger.DefaultOptions("").WithInMemory(true))
}

func open(opts badger.Options) (*Cache, error) {
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open perft cache")
	}
	return &Cache{db: db}, nil
}

// Close closes the database.
func (c *Cache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Get returns the stored count for k. A missing key is not an error.
func (c *Cache) Get(k Key) (uint64, bool, error) {
	var nodes uint64
	found := false

	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(k.bytes())
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			if len(val) != 8 {
				return fmt.Errorf("perft cache value of %d bytes: %w", len(val), errors.ErrInternalInvariant)
			}
			nodes = binary.BigEndian.Uint64(val)
			found = true
			return nil
		})
	})

	return nodes, found, err
}

// Put stores the count for k, replacing any earlier value.
func (c *Cache) Put(k Key, nodes uint64) error {
	val := make([]byte, 8)
	binary.BigEndian.PutUint64(val, nodes)

	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(k.bytes(), val)
	})
}
