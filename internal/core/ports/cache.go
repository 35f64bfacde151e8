package ports

// FreeVehiclesCacheKey is the single key under which the free-vehicles view
// is cached. Assignment commands invalidate it after every committed
// binding change.
const FreeVehiclesCacheKey = "vehicles:free"

// Cache is a small read-through cache port. Entries may expire on their own;
// Invalidate drops an entry eagerly after a write that makes it stale.
type Cache interface {
	// Get returns the cached value for key and whether it was present.
	Get(key string) (any, bool)

	// Set stores a value under key, replacing any previous entry.
	Set(key string, value any)

	// Invalidate removes the entry for key if present.
	Invalidate(key string)
}
