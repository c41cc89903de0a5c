package translation

// Cache stores translations in memory for the duration of a run, keyed
// by content hash. Identical files under different names hit the model
// service only once.
type Cache struct {
	translations map[string]string
}

// NewCache creates a new in-memory translation cache
func NewCache() *Cache {
	return &Cache{
		translations: make(map[string]string),
	}
}

// Add adds a translation to the cache
func (c *Cache) Add(contentHash, translated string) {
	c.translations[contentHash] = translated
}

// Get retrieves a translation from the cache
func (c *Cache) Get(contentHash string) (string, bool) {
	translated, ok := c.translations[contentHash]
	return translated, ok
}

// Len returns the number of cached translations
func (c *Cache) Len() int {
	return len(c.translations)
}
