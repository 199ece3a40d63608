package karst

import (
	"strconv"
	"sync"
)

// Index is the stable identity handle of a component inside a dynamic parent
// collection. The position may shift as siblings are inserted or removed;
// every holder observes the current value.
type Index struct {
	mu       sync.Mutex
	position int
}

// NewIndex creates an identity handle at the given position.
func NewIndex(position int) *Index {
	return &Index{position: position}
}

// Current returns the current position within the parent collection.
func (i *Index) Current() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.position
}

// Set moves the handle to a new position. Called by collection owners when
// siblings are inserted, removed, or reordered.
func (i *Index) Set(position int) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.position = position
}

func (i *Index) String() string {
	return strconv.Itoa(i.Current())
}
