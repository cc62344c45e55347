package contentstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/carebridge/medtour-backend/internal/domain/entities"
	"github.com/carebridge/medtour-backend/internal/domain/providers"
)

// CachedAdapter wraps a ContentStore with the ephemeral TTL cache. Cached
// values are pure functions of the query, so a concurrent last-writer-wins
// overwrite is harmless; entries self-expire and are never invalidated.
type CachedAdapter struct {
	store providers.ContentStore
	cache providers.CacheProvider

	resolveTTL   time.Duration
	rootQueryTTL time.Duration
}

// NewCachedAdapter creates a read-through cached content store.
func NewCachedAdapter(store providers.ContentStore, cache providers.CacheProvider, resolveTTL, rootQueryTTL time.Duration) providers.ContentStore {
	return &CachedAdapter{
		store:        store,
		cache:        cache,
		resolveTTL:   resolveTTL,
		rootQueryTTL: rootQueryTTL,
	}
}

type cachedResult struct {
	Records []entities.Record `json:"records"`
	Total   int               `json:"total"`
}

// Query serves from cache when possible and falls through to the store.
func (a *CachedAdapter) Query(ctx context.Context, q providers.ContentQuery) ([]entities.Record, int, error) {
	key := queryCacheKey(q)

	if data, err := a.cache.Get(ctx, key); err == nil {
		var cached cachedResult
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached.Records, cached.Total, nil
		}
		log.Warn().Str("key", key).Msg("failed to decode cached content result")
	}

	records, total, err := a.store.Query(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	ttl := a.rootQueryTTL
	if len(q.IDs) > 0 {
		ttl = a.resolveTTL
	}
	if data, err := json.Marshal(cachedResult{Records: records, Total: total}); err == nil {
		if err := a.cache.Set(ctx, key, data, ttl); err != nil {
			log.Warn().Str("key", key).Err(err).Msg("failed to cache content result")
		}
	}

	return records, total, nil
}

// queryCacheKey builds a deterministic key for a content query.
func queryCacheKey(q providers.ContentQuery) string {
	raw := fmt.Sprintf("%s|%s|%s=%s|%d|%d|%t",
		q.Collection,
		strings.Join(q.IDs, ","),
		q.TextField, q.Text,
		q.Limit, q.Offset,
		q.NewestFirst,
	)
	sum := sha256.Sum256([]byte(raw))
	return "content:" + string(q.Collection) + ":" + hex.EncodeToString(sum[:16])
}
