package store

import (
	"time"

	"github.com/ppiankov/civicscore/internal/cache"
	"github.com/ppiankov/civicscore/internal/engine"
	"github.com/ppiankov/civicscore/internal/model"
	"github.com/ppiankov/civicscore/internal/worker"
)

// FromConfig builds the store stack described by cfg: the file-system
// store, throttled when a rate is set, behind a cache when enabled.
// Cache hits do not consume rate budget.
func FromConfig(cfg model.StoreConfig) engine.Store {
	var s engine.Store = NewFS(cfg.DataDir)

	if cfg.RequestsPerSecond > 0 {
		s = NewRateLimited(s, worker.NewLimiter(cfg.RequestsPerSecond, cfg.Burst))
	}
	if cfg.CacheEnabled {
		s = NewCached(s, cache.NewMemoryCache(cfg.CacheTTL, 10*time.Minute), cfg.CacheTTL)
	}
	return s
}
