package storage

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// Saved games live under this key prefix; the rest of the key is the name.
const gamePrefix = "game/"

// Store wraps BadgerDB for saved games.
type Store struct {
	db *badger.DB
}

// Open opens, or creates, the database in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	return open(opts)
}

// OpenInMemory opens a database that lives only as long as the Store.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Store, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open game store")
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func gameKey(name string) ([]byte, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("empty game name: %w", errors.ErrInvalidConfig)
	}
	return []byte(gamePrefix + name), nil
}

// SaveGame stores snap under name, replacing any earlier save.
func (s *Store) SaveGame(name string, snap game.Snapshot) error {
	key, err := gameKey(name)
	if err != nil {
		return err
	}
	data, err := snap.Encode()
	if err != nil {
		return errors.Wrapf(err, "encode game %q", name)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

// LoadGame returns the snapshot saved under name.
func (s *Store) LoadGame(name string) (game.Snapshot, error) {
	key, err := gameKey(name)
	if err != nil {
		return game.Snapshot{}, err
	}

	var snap game.Snapshot
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("game %q: %w", name, errors.ErrSnapshotNotFound)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			snap, err = game.DecodeSnapshot(val)
			return err
		})
	})
	return snap, err
}

// DeleteGame removes the game saved under name.
func (s *Store) DeleteGame(name string) error {
	key, err := gameKey(name)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err != nil {
			if stderrors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("game %q: %w", name, errors.ErrSnapshotNotFound)
			}
			return err
		}
		return txn.Delete(key)
	})
}

// ListGames returns the names of all saved games in sorted order.
func (s *Store) ListGames() ([]string, error) {
	var names []string
	prefix := []byte(gamePrefix)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().KeyCopy(nil)
			names = append(names, string(key[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(names)
	return names, nil
}
