// Package partmap provides a map partitioned by an integer level.
//
// Each part is guarded by its own lock, so writers working on different
// levels never contend.
package partmap

import (
	"sync"
)

type part[K comparable, V any] struct {
	mu sync.RWMutex
	m  map[K]V
}

// Map is a partitioned map. The zero value is not usable, use New.
type Map[K comparable, V any] struct {
	parts []*part[K, V]
}

// New returns a map with numPart parts, each sized for partSize entries.
func New[K comparable, V any](numPart, partSize int) *Map[K, V] {
	pm := &Map[K, V]{parts: make([]*part[K, V], numPart)}
	for i := range pm.parts {
		pm.parts[i] = &part[K, V]{m: make(map[K]V, partSize)}
	}
	return pm
}

// Load returns the value stored for k in part idx.
func (pm *Map[K, V]) Load(idx int, k K) (V, bool) {
	part := pm.parts[idx]
	part.mu.RLock()
	v, ok := part.m[k]
	part.mu.RUnlock()
	return v, ok
}

// Store stores v for k in part idx unless a value is already present.
// It returns the value held afterwards and whether v was stored.
func (pm *Map[K, V]) Store(idx int, k K, v V) (V, bool) {
	part := pm.parts[idx]
	part.mu.Lock()
	if old, ok := part.m[k]; ok {
		part.mu.Unlock()
		return old, false
	}
	part.m[k] = v
	part.mu.Unlock()
	return v, true
}

// Len returns the number of entries in part idx.
func (pm *Map[K, V]) Len(idx int) int {
	part := pm.parts[idx]
	part.mu.RLock()
	defer part.mu.RUnlock()
	return len(part.m)
}

// Size returns the number of entries of all parts.
func (pm *Map[K, V]) Size() int {
	size := 0
	for i := range pm.parts {
		size += pm.Len(i)
	}
	return size
}

// NumPart returns the number of parts.
func (pm *Map[K, V]) NumPart() int { return len(pm.parts) }

// Clear removes all entries.
func (pm *Map[K, V]) Clear() {
	for _, part := range pm.parts {
		part.mu.Lock()
		clear(part.m)
		part.mu.Unlock()
	}
}
