package utils

// MultiMap maps a key to an insertion-ordered list of values. Both tree
// indices use it: several instance roots may share one source path, and
// several instances may (erroneously) claim one user-specified ref, so the
// value side has to be a collection either way.
type MultiMap[K comparable, V comparable] struct {
	entries map[K][]V
}

func NewMultiMap[K comparable, V comparable]() *MultiMap[K, V] {
	return &MultiMap[K, V]{entries: make(map[K][]V)}
}

// Insert appends value under key. Duplicate values are kept; callers that
// care about one-value-per-key detect that through Get before inserting.
func (m *MultiMap[K, V]) Insert(key K, value V) {
	m.entries[key] = append(m.entries[key], value)
}

// Remove deletes the first occurrence of value under key, dropping the key
// entirely once its last value is gone. Reports whether a value was removed.
func (m *MultiMap[K, V]) Remove(key K, value V) bool {
	values, ok := m.entries[key]
	if !ok {
		return false
	}
	for i, v := range values {
		if v == value {
			values = append(values[:i], values[i+1:]...)
			if len(values) == 0 {
				delete(m.entries, key)
			} else {
				m.entries[key] = values
			}
			return true
		}
	}
	return false
}

// Get returns the values under key in insertion order, or nil. The returned
// slice is the map's own storage; callers must not mutate it.
func (m *MultiMap[K, V]) Get(key K) []V {
	return m.entries[key]
}

// Len reports the number of keys with at least one value.
func (m *MultiMap[K, V]) Len() int {
	return len(m.entries)
}
