package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/foto/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketProfiles = []byte("profiles")
	bucketPhotos   = []byte("photos")

	allBuckets = [][]byte{bucketProfiles, bucketPhotos}
)

// CacheStore implements domain.Store using BoltDB.
type CacheStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

var _ domain.Store = (*CacheStore)(nil)

// NewCacheStore opens the cache for one API. An empty baseCacheDir gives a
// memory-only store. Each API URL gets its own directory so switching
// servers never mixes their data.
func NewCacheStore(baseCacheDir, apiURL string) (*CacheStore, error) {
	if baseCacheDir == "" {
		return &CacheStore{cache: make(map[string][]byte)}, nil
	}

	dir := baseCacheDir
	if apiURL != "" {
		dir = filepath.Join(baseCacheDir, hashAPIURL(apiURL))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "foto.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &CacheStore{db: db, cache: make(map[string][]byte)}, nil
}

func hashAPIURL(apiURL string) string {
	normalized := strings.TrimRight(strings.ToLower(apiURL), "/")
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:6])
}

func (s *CacheStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *CacheStore) get(bucket []byte, key string, dest interface{}) bool {
	cacheKey := string(bucket) + ":" + key

	s.mu.RLock()
	if data, ok := s.cache[cacheKey]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return false
	}

	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (s *CacheStore) set(bucket []byte, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cache[string(bucket)+":"+key] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(key), data)
	})
}

func (s *CacheStore) delete(bucket []byte, key string) {
	s.mu.Lock()
	delete(s.cache, string(bucket)+":"+key)
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	s.db.Update(func(tx *bolt.Tx) error {
		if b := tx.Bucket(bucket); b != nil {
			b.Delete([]byte(key))
		}
		return nil
	})
}

// === Profiles ===

func (s *CacheStore) GetProfile(userID string) (domain.User, bool) {
	var user domain.User
	if userID == "" {
		return user, false
	}
	ok := s.get(bucketProfiles, userID, &user)
	return user, ok
}

// SaveProfile stores a fetched profile. Empty entities are never cached.
func (s *CacheStore) SaveProfile(user domain.User) error {
	if user.ID == "" {
		return nil
	}
	return s.set(bucketProfiles, user.ID, user)
}

func (s *CacheStore) InvalidateProfile(userID string) {
	s.delete(bucketProfiles, userID)
}

// === Photos ===

func (s *CacheStore) GetPhotos(ownerID string) ([]domain.Photo, bool) {
	var photos []domain.Photo
	if ownerID == "" {
		return nil, false
	}
	ok := s.get(bucketPhotos, ownerID, &photos)
	return photos, ok
}

func (s *CacheStore) SavePhotos(ownerID string, photos []domain.Photo) error {
	if ownerID == "" {
		return nil
	}
	if photos == nil {
		photos = []domain.Photo{}
	}
	return s.set(bucketPhotos, ownerID, photos)
}

func (s *CacheStore) InvalidatePhotos(ownerID string) {
	s.delete(bucketPhotos, ownerID)
}

func (s *CacheStore) InvalidateAll() {
	s.mu.Lock()
	s.cache = make(map[string][]byte)
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	s.db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range allBuckets {
			if err := tx.DeleteBucket(bucket); err != nil && err != bolt.ErrBucketNotFound {
				return err
			}
			if _, err := tx.CreateBucket(bucket); err != nil {
				return err
			}
		}
		return nil
	})
}
