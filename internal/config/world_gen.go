package config

import "sync"

// WorldGenSettings holds world generation configuration
type WorldGenSettings struct {
	mu     sync.RWMutex
	seed   int64
	radius int // generated area half-width in blocks
}

var globalWorldGenSettings = &WorldGenSettings{
	seed:   1337,
	radius: 128,
}

// GetSeed returns the terrain seed
func GetSeed() int64 {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.seed
}

// SetSeed sets the terrain seed
func SetSeed(seed int64) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.seed = seed
}

// GetWorldRadius returns the generated area half-width in blocks
func GetWorldRadius() int {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.radius
}

// SetWorldRadius sets the generated area half-width, clamped to 16..1024
func SetWorldRadius(radius int) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	if radius < 16 {
		radius = 16
	}
	if radius > 1024 {
		radius = 1024
	}
	globalWorldGenSettings.radius = radius
}
