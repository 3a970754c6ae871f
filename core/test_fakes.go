package core

import "sync"

// FakeStore is a test-only in-memory Store. It exposes error fields for
// behavior injection and a snapshot of raw writes for assertions.
type FakeStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	getErr    error
	setErr    error
	deleteErr error
}

func NewFakeStore() *FakeStore {
	return &FakeStore{data: make(map[string][]byte)}
}

func (f *FakeStore) Get(key string) ([]byte, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.getErr != nil {
		return nil, f.getErr
	}
	value, ok := f.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (f *FakeStore) Set(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.setErr != nil {
		return f.setErr
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	f.data[key] = stored
	return nil
}

func (f *FakeStore) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.data, key)
	return nil
}

// Raw returns the stored bytes for a key without error injection.
func (f *FakeStore) Raw(key string) ([]byte, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	value, ok := f.data[key]
	return value, ok
}
