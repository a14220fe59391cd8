package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"svw.info/sudoku-engine/internal/domain"
)

const puzzlePrefix = "puzzle/"

// Badger stores puzzles as JSON values in an embedded BadgerDB. It
// offers the same contract as FS with lower per-operation latency and a
// single on-disk directory.
type Badger struct{ db *badger.DB }

// OpenBadger opens (or creates) the database under dir. An empty dir
// opens an in-memory instance, which is what the tests use.
func OpenBadger(dir string) (*Badger, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", dir, err)
	}
	return &Badger{db: db}, nil
}

func (s *Badger) Close() error { return s.db.Close() }

func key(id string) []byte { return []byte(puzzlePrefix + id) }

func (s *Badger) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(p.ID), data)
	})
}

func (s *Badger) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	var out domain.Puzzle
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &out)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Badger) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	var out []domain.PuzzleMeta
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(puzzlePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var p domain.Puzzle
				if err := json.Unmarshal(val, &p); err != nil || p.ID == "" {
					return nil // skip unreadable entries
				}
				out = append(out, domain.PuzzleMeta{ID: p.ID, Name: p.Name, CreatedAt: p.CreatedAt})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
