// Package cache provides the optional short-TTL response cache for the
// insight search endpoint. Keys are derived from the normalized filter set
// so the same query in any parameter order hits the same entry.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/insightwires/newsmeta/internal/domain/filter"
)

// Cache stores serialized response envelopes keyed by normalized query.
// Implementations must be safe for concurrent use. A miss is (nil, false,
// nil); lookup errors are returned for the caller to log and treat as a
// miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Close()
}

// Key derives the cache key for a search request. Parameters are sorted by
// name so ?a=1&b=2 and ?b=2&a=1 share an entry; empty values are dropped
// the same way the query builder drops them.
func Key(params filter.Params) string {
	parts := make([]string, 0, len(params))
	for name, value := range params {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		parts = append(parts, filter.Canonical(name)+"="+value)
	}
	sort.Strings(parts)

	sum := sha256.Sum256([]byte(strings.Join(parts, "&")))
	return "newsmeta:search:" + hex.EncodeToString(sum[:])
}
