package share

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/devutils/devutils/pkg/config"
	"github.com/devutils/devutils/pkg/storage/cache"
)

// KeyPrefix namespaces share records inside the backing store so they
// cannot collide with unrelated keys in the same database.
const KeyPrefix = "share:"

const createAttempts = 3

var (
	// ErrNotFound covers both "never existed" and "expired"; the two are
	// deliberately indistinguishable to callers.
	ErrNotFound = errors.New("share: link expired or does not exist")

	// ErrEmptyPayload is returned by Create when there is nothing to store.
	ErrEmptyPayload = errors.New("share: empty payload")

	// ErrKeyCollision is returned when every generated key was already
	// taken. With an 8-character key space this indicates a failure of the
	// random source rather than genuine exhaustion.
	ErrKeyCollision = errors.New("share: could not generate an unused key")
)

// Record is the immutable envelope stored under a share key.
type Record struct {
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"createdAt"`
	Type      string          `json:"type"`
}

type CreateResult struct {
	Key string
	URL string
}

// Service creates and resolves share links on top of an expiring store.
// Records are written once with a fixed TTL and never updated or renewed.
type Service struct {
	cache cache.Cache
	conf  config.Share
}

func NewService(c cache.Cache, conf config.Share) *Service {
	if conf.TTLSeconds <= 0 {
		conf.TTLSeconds = 86400
	}
	if conf.KeyLength <= 0 {
		conf.KeyLength = DefaultKeyLength
	}
	if conf.Domain == "" {
		conf.Domain = "localhost:3000"
	}
	return &Service{cache: c, conf: conf}
}

// TTL returns the lifetime applied to new records.
func (s *Service) TTL() time.Duration {
	return time.Duration(s.conf.TTLSeconds) * time.Second
}

// Create stores payload under a fresh key and returns the key together with
// the public URL embedding it. Keys are written with put-if-absent semantics
// and regenerated on collision, so an existing record is never overwritten.
func (s *Service) Create(ctx context.Context, payload json.RawMessage, kind string) (*CreateResult, error) {
	if isEmptyJSON(payload) {
		return nil, ErrEmptyPayload
	}

	record := Record{
		Data:      payload,
		CreatedAt: time.Now().UTC(),
		Type:      kind,
	}
	blob, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("share: encode record: %w", err)
	}

	for i := 0; i < createAttempts; i++ {
		key := NewKey(s.conf.KeyLength)
		ok, err := s.cache.SetNX(ctx, KeyPrefix+key, blob, s.TTL())
		if err != nil {
			return nil, err
		}
		if ok {
			return &CreateResult{Key: key, URL: s.publicURL(key)}, nil
		}
	}
	return nil, ErrKeyCollision
}

// Resolve returns the record stored under key. Reads are non-destructive:
// the record stays retrievable until its TTL elapses no matter how often it
// is resolved.
func (s *Service) Resolve(ctx context.Context, key string) (*Record, error) {
	if key == "" {
		return nil, ErrNotFound
	}

	blob, err := s.cache.Get(ctx, KeyPrefix+key)
	if errors.Is(err, cache.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var record Record
	if err := json.Unmarshal(blob, &record); err != nil {
		return nil, fmt.Errorf("share: decode record %q: %w", key, err)
	}
	return &record, nil
}

func (s *Service) publicURL(key string) string {
	scheme := "http"
	if s.conf.HTTPS {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/share/%s", scheme, s.conf.Domain, key)
}

func isEmptyJSON(payload json.RawMessage) bool {
	switch string(payload) {
	case "", "null", `""`, "{}", "[]":
		return true
	}
	return false
}
