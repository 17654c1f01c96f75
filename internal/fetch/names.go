package fetch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// NameRegistry hands out collision-free filenames within output directories.
// Reservation is serialized through the registry so two workers finishing at
// the same instant with the same base name cannot both claim it; the
// filesystem is still consulted for files from earlier runs.
type NameRegistry struct {
	mu       sync.Mutex
	reserved map[string]bool
}

func NewNameRegistry() *NameRegistry {
	return &NameRegistry{reserved: make(map[string]bool)}
}

// Reserve returns base unchanged if free, otherwise the first free
// "stem_1.ext", "stem_2.ext", ... variant, and marks it taken.
func (r *NameRegistry) Reserve(dir, base string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	name := base
	for counter := 1; r.taken(dir, name); counter++ {
		name = fmt.Sprintf("%s_%d%s", stem, counter, ext)
	}
	r.reserved[filepath.Join(dir, name)] = true
	return name
}

func (r *NameRegistry) taken(dir, name string) bool {
	key := filepath.Join(dir, name)
	if r.reserved[key] {
		return true
	}
	_, err := os.Stat(key)
	return err == nil
}
