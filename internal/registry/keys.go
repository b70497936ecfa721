package registry

// ServiceKey is a type alias for string to provide a bit more type safety for service locator keys.
type ServiceKey string

// Service keys for dependency injection. Using constants prevents typos.
// Owning packages wrap them in a typed Key, e.g.
// registry.Key[*catalog.Store](registry.CatalogStoreKey).
const (
	CatalogStoreKey    ServiceKey = "catalog.store"
	ContactSessionsKey ServiceKey = "contact.sessions"
)
