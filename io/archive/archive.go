// Package archive persists completed aggregation rounds: every merged
// snapshot is journaled to a write-ahead log and materialized into BadgerDB,
// and both the round history and the latest aggregate survive restarts.
package archive

import (
	stdErrors "errors"
	"fmt"
	"os"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
	"github.com/vadiminshakov/gowal"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/clustermesh/quorumcall/core/dto"
)

const (
	latestKey   = "aggregate/latest"
	roundPrefix = "round/"
)

// ErrNotFound returned when no aggregate has been archived yet.
var ErrNotFound = errors.New("no archived aggregate")

// Archive journals aggregates to a WAL and materializes them in BadgerDB.
// The WAL is the source of truth: on startup the database is rebuilt from it.
type Archive struct {
	wal *gowal.Wal
	db  *badger.DB
	mu  sync.Mutex
	// next WAL index to write; recovered from the log on startup
	next uint64
}

// New opens the archive at dbPath and replays the WAL into BadgerDB.
func New(wal *gowal.Wal, dbPath string) (*Archive, error) {
	if wal == nil {
		return nil, errors.New("wal is nil")
	}
	if dbPath == "" {
		return nil, errors.New("db path is empty")
	}

	if err := os.MkdirAll(dbPath, 0o755); err != nil {
		return nil, errors.Wrap(err, "create badger directory")
	}

	db, err := badger.Open(badger.DefaultOptions(dbPath).WithLogger(nil))
	if err != nil {
		return nil, errors.Wrap(err, "open badger db")
	}

	a := &Archive{wal: wal, db: db}
	if err := a.recover(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return a, nil
}

// Record journals the aggregate and stores it under its round key, replacing
// the latest aggregate as well.
func (a *Archive) Record(agg dto.AggregateSnapshot) error {
	raw, err := msgpack.Marshal(agg)
	if err != nil {
		return errors.Wrap(err, "encode aggregate")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	roundKey := fmt.Sprintf("%s%016d", roundPrefix, a.next)
	if err := a.wal.Write(a.next, roundKey, raw); err != nil {
		return errors.Wrap(err, "journal aggregate")
	}
	a.next++

	return a.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(roundKey), raw); err != nil {
			return err
		}
		return txn.Set([]byte(latestKey), raw)
	})
}

// Latest returns the most recently archived aggregate.
func (a *Archive) Latest() (dto.AggregateSnapshot, error) {
	var raw []byte
	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(latestKey))
		if err != nil {
			if stdErrors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return dto.AggregateSnapshot{}, err
	}

	var agg dto.AggregateSnapshot
	if err := msgpack.Unmarshal(raw, &agg); err != nil {
		return dto.AggregateSnapshot{}, errors.Wrap(err, "decode archived aggregate")
	}

	return agg, nil
}

// Rounds returns the number of archived rounds.
func (a *Archive) Rounds() int {
	count := 0
	_ = a.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(roundPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})

	return count
}

// Close closes the underlying Badger database. The WAL is owned by the
// caller and closed separately.
func (a *Archive) Close() error {
	return a.db.Close()
}

func (a *Archive) recover() error {
	var (
		maxIndex   uint64
		hasEntries bool
	)

	for msg := range a.wal.Iterator() {
		hasEntries = true
		if msg.Idx > maxIndex {
			maxIndex = msg.Idx
		}
		if msg.Key == "" || msg.Value == nil {
			continue
		}

		if err := a.db.Update(func(txn *badger.Txn) error {
			if err := txn.Set([]byte(msg.Key), append([]byte{}, msg.Value...)); err != nil {
				return err
			}
			return txn.Set([]byte(latestKey), append([]byte{}, msg.Value...))
		}); err != nil {
			return errors.Wrap(err, "apply wal entry")
		}
	}

	if hasEntries {
		a.next = maxIndex + 1
	}

	return nil
}
