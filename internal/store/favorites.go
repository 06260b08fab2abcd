package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketFavorites = []byte("favorites")

// The whole favorite set lives under one key as a JSON-encoded identifier
// list, read and rewritten wholesale on every toggle.
const favoritesKey = "list"

// FavoriteStore persists favorited work identifiers in BoltDB.
// Implements domain.Favorites.
type FavoriteStore struct {
	db *bolt.DB
	mu sync.RWMutex

	// In-memory copy of the persisted list, kept in insertion order
	ids []string
}

// NewFavoriteStore opens (or creates) the favorites database at path.
// An empty path opens a memory-only store with no persistence.
func NewFavoriteStore(path string) (*FavoriteStore, error) {
	if path == "" {
		return &FavoriteStore{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketFavorites)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &FavoriteStore{db: db}
	if err := s.load(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *FavoriteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// load reads the persisted list into memory
func (s *FavoriteStore) load() error {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketFavorites).Get([]byte(favoritesKey)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if data == nil {
		return nil
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		// Corrupt entry: start over rather than refuse to run
		return nil
	}
	s.ids = ids
	return nil
}

// save rewrites the full list
func (s *FavoriteStore) save() error {
	data, err := json.Marshal(s.ids)
	if err != nil {
		return err
	}
	if s.db == nil {
		return nil // Memory-only mode
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketFavorites).Put([]byte(favoritesKey), data)
	})
}

// Toggle flips membership for id and returns the new state.
// Toggling the same id twice restores the original set.
func (s *FavoriteStore) Toggle(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return false, s.save()
		}
	}
	s.ids = append(s.ids, id)
	return true, s.save()
}

// Contains reports whether id is favorited
func (s *FavoriteStore) Contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// All returns the favorited identifiers in insertion order
func (s *FavoriteStore) All() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}
