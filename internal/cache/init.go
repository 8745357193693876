package cache

import (
	"github.com/subplane/subplane/internal/config"
	"github.com/subplane/subplane/internal/logger"
)

// Initialize initializes the cache system
func Initialize(cfg *config.Configuration, log *logger.Logger) Cache {
	log.Info("Initializing cache system")
	return NewInMemoryCache(cfg)
}
