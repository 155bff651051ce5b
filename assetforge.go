/*
Package assetforge batch converts source images into finished game assets.

Each image is decoded, run through the asset pipeline for its class and
written out as PNG. A sqlite cache remembers which outputs were produced from
which source and settings so unchanged work is skipped on later runs.
*/
package assetforge

import "log"

const defaultWorkers = 4

// AssetForge processes images into assets, optionally skipping work recorded
// in a Cache.
type AssetForge struct {
	cache  *Cache
	logger *log.Logger
}

// New returns an AssetForge. cache may be nil to disable caching.
func New(cache *Cache, logger *log.Logger) *AssetForge {
	return &AssetForge{
		cache:  cache,
		logger: logger,
	}
}
