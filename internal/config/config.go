package config

import (
	"sync"
	"time"

	"voxelview/internal/render"
)

// RenderSettings holds render configuration
type RenderSettings struct {
	mu              sync.RWMutex
	renderDistance  int // in sections
	sectionSize     int // blocks per section edge
	maxRemeshMillis int // negative disables the remesh budget
	neighborRule    render.NeighborRule
	fpsLimit        int
}

var globalRenderSettings = &RenderSettings{
	renderDistance:  8,
	sectionSize:     16,
	maxRemeshMillis: 4,
	neighborRule:    render.Faces,
	fpsLimit:        120,
}

// GetRenderDistance returns the current render distance in sections
func GetRenderDistance() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.renderDistance
}

// SetRenderDistance sets the render distance in sections
func SetRenderDistance(distance int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Clamp to reasonable values
	if distance < 1 {
		distance = 1
	}
	if distance > 32 {
		distance = 32
	}

	globalRenderSettings.renderDistance = distance
}

// GetSectionSize returns the section edge length in blocks
func GetSectionSize() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.sectionSize
}

// SetSectionSize sets the section edge length, clamped to 1..64
func SetSectionSize(size int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	if size < 1 {
		size = 1
	}
	if size > 64 {
		size = 64
	}
	globalRenderSettings.sectionSize = size
}

// GetMaxRemeshTime returns the per-frame remesh budget. Negative means unlimited.
func GetMaxRemeshTime() time.Duration {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	if globalRenderSettings.maxRemeshMillis < 0 {
		return -1
	}
	return time.Duration(globalRenderSettings.maxRemeshMillis) * time.Millisecond
}

// SetMaxRemeshMillis sets the remesh budget; any negative value disables it
func SetMaxRemeshMillis(ms int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	if ms < 0 {
		ms = -1
	}
	if ms > 1000 {
		ms = 1000
	}
	globalRenderSettings.maxRemeshMillis = ms
}

// GetNeighborRule returns how far block changes invalidate adjacent sections
func GetNeighborRule() render.NeighborRule {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.neighborRule
}

// SetNeighborRule sets the dirty propagation rule
func SetNeighborRule(rule render.NeighborRule) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.neighborRule = rule
}

// GetFPSLimit returns the frame cap; 0 means uncapped
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap; negative values are treated as uncapped
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	if limit < 0 {
		limit = 0
	}
	globalRenderSettings.fpsLimit = limit
}

// RenderOptions builds renderer options from the current settings.
func RenderOptions() render.Options {
	return render.Options{
		SectionSize:   GetSectionSize(),
		NeighborRule:  GetNeighborRule(),
		MaxRemeshTime: GetMaxRemeshTime(),
		CullMargin:    1,
	}
}
