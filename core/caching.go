package core

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/arshaad-deriv/lingostat/internal/contract"
	"github.com/arshaad-deriv/lingostat/schema"
)

// currentCacheVersion defines the version of the cache schema
const currentCacheVersion = 1

// cachedLoadDirectory - Simplified and validated using DB columns
func cachedLoadDirectory(cfg *contract.Config, mgr contract.CacheManager) (*schema.LoadResult, error) {
	store := mgr.GetLoaderStore()
	if store == nil {
		// Fallback to direct computation
		return LoadDirectory(cfg)
	}

	key, err := generateCacheKey(cfg)
	if err != nil {
		return LoadDirectory(cfg)
	}

	// Check for cache hit
	if result := checkCacheHit(store, key); result != nil {
		return result, nil
	}

	// Cache miss: compute and store
	return computeAndStore(cfg, store, key)
}

// checkCacheHit attempts to retrieve and validate a cached result
func checkCacheHit(store contract.CacheStore, key string) *schema.LoadResult {
	data, version, ts, err := store.Get(key)
	if err != nil {
		return nil // Cache miss
	}

	// Validate version and staleness
	if version == currentCacheVersion {
		entryTimestamp := time.Unix(ts, 0)
		if time.Since(entryTimestamp) <= 7*24*time.Hour {
			var result schema.LoadResult
			if err := json.Unmarshal(data, &result); err == nil {
				return &result // Cache hit
			}
		}
	}

	return nil // Cache miss (stale or version mismatch)
}

// computeAndStore computes the result and stores it in cache
func computeAndStore(cfg *contract.Config, store contract.CacheStore, key string) (*schema.LoadResult, error) {
	result, err := LoadDirectory(cfg)
	if err != nil {
		return nil, err
	}

	// Store in cache
	if data, err := json.Marshal(result); err == nil {
		_ = store.Set(key, data, currentCacheVersion, time.Now().Unix())
	}

	return result, nil
}

// generateCacheKey fingerprints the input directory. Any file added, removed
// or touched changes the key, so a stale cache entry is never served for a
// modified directory.
func generateCacheKey(cfg *contract.Config) (string, error) {
	files, err := listExportFiles(cfg.Dir)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(files)+1)
	parts = append(parts, cfg.Dir)
	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			return "", err
		}
		parts = append(parts, fmt.Sprintf("%s:%d:%d", path, info.ModTime().Unix(), info.Size()))
	}
	sort.Strings(parts[1:])

	key := strings.Join(parts, "|")
	return fmt.Sprintf("%x", sha256.Sum256([]byte(key))), nil
}
