package generator

import (
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	gocache "github.com/patrickmn/go-cache"
	"gopkg.in/yaml.v3"

	"github.com/pluqqy/sidebar-builder/pkg/models"
)

const (
	DefaultCacheExpiration = 10 * time.Minute
	DefaultCleanupInterval = 30 * time.Minute
)

// Cache memoizes whole artifact sets by snapshot. Entries always hold every
// artifact of a snapshot, so a change to any input invalidates all of them.
type Cache struct {
	cache *gocache.Cache
}

// NewCache creates a cache with the given expiration and cleanup interval
func NewCache(expiration, cleanupInterval time.Duration) *Cache {
	return &Cache{cache: gocache.New(expiration, cleanupInterval)}
}

// Generate returns the cached file set for the snapshot, rendering it on a miss.
// Callers receive their own slice and may modify it.
func (c *Cache) Generate(settings models.Settings, content *models.Content) []models.CodeFile {
	key, ok := SnapshotKey(settings, content)
	if !ok {
		return Generate(settings, content)
	}

	if v, found := c.cache.Get(key); found {
		if files, ok := v.([]models.CodeFile); ok {
			return append([]models.CodeFile(nil), files...)
		}
	}

	files := Generate(settings, content)
	c.cache.SetDefault(key, append([]models.CodeFile(nil), files...))
	return files
}

// Len returns the number of cached snapshots
func (c *Cache) Len() int {
	return c.cache.ItemCount()
}

// Flush drops every entry
func (c *Cache) Flush() {
	c.cache.Flush()
}

type snapshot struct {
	Settings models.Settings `yaml:"settings"`
	Content  *models.Content `yaml:"content"`
}

// SnapshotKey hashes everything that affects generated output. The active tab
// is excluded since no artifact reads it.
func SnapshotKey(settings models.Settings, content *models.Content) (string, bool) {
	settings.Normalize()
	settings.ActiveTab = ""
	if content == nil {
		content = &models.Content{}
	}

	data, err := yaml.Marshal(snapshot{Settings: settings, Content: content})
	if err != nil {
		return "", false
	}
	return strconv.FormatUint(xxhash.Sum64(data), 16), true
}
