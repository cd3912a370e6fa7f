// Package iocache is for durable storage of loader results and run history.
package iocache

import (
	"sync"

	"github.com/arshaad-deriv/lingostat/internal/contract"
)

// CacheStoreManager manages the loader cache and history store instances.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointers during initialization
	loader       contract.CacheStore
	history      contract.HistoryStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetLoaderStore returns the loader CacheStore.
func (mgr *CacheStoreManager) GetLoaderStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.loader
}

// GetHistoryStore returns the run HistoryStore.
func (mgr *CacheStoreManager) GetHistoryStore() contract.HistoryStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.history
}
