package kv

import "errors"

// ErrWriteRejected is returned by a MemStore whose writes have been
// disabled, simulating a full or broken backend.
var ErrWriteRejected = errors.New("kv: write rejected")

// MemStore is a map-backed Store. Useful for tests and throwaway
// sessions that should not touch the filesystem.
type MemStore struct {
	data map[string]string

	// FailWrites makes every Set return ErrWriteRejected without
	// recording the value.
	FailWrites bool
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]string)}
}

func (m *MemStore) Get(key string) (string, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *MemStore) Set(key, value string) error {
	if m.FailWrites {
		return ErrWriteRejected
	}
	m.data[key] = value
	return nil
}
