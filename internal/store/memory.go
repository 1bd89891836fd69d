package store

// MemStore is an in-memory Store used by tests and by components that need a
// store before the system binding is available.
type MemStore struct {
	values map[Key]string
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[Key]string)}
}

// Get returns the stored value for key, or ErrNotFound when absent.
func (m *MemStore) Get(key Key) (string, error) {
	value, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Set writes value under key.
func (m *MemStore) Set(key Key, value string) error {
	m.values[key] = value
	return nil
}

// Snapshot returns a copy of every stored value, for comparing state across
// operations in tests.
func (m *MemStore) Snapshot() map[Key]string {
	snap := make(map[Key]string, len(m.values))
	for k, v := range m.values {
		snap[k] = v
	}
	return snap
}
