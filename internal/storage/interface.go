package storage

// Provider is the key-value persistence contract the planner writes
// through. Values are JSON-serializable records stored whole under a
// string key; there is no partial or delta persistence.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Read unmarshals the value stored under key into out. It fails soft:
	// it returns false when the key is absent or the stored value cannot
	// be decoded, and the caller falls back to its default.
	Read(key string, out any) bool

	// Write stores the value under key and notifies same-process
	// subscribers of the key on success.
	Write(key string, v any) error

	// Subscribe registers fn to run after every successful Write of key.
	// Subscribers are invoked synchronously, in registration order.
	Subscribe(key string, fn func())

	// Utils
	GetConfigPath() string
}
