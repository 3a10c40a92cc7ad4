// Package kv provides the string-keyed storage the task store persists
// through: a tiny synchronous get/set contract with a file-backed
// implementation for real use and an in-memory one for tests.
package kv

// Store is a synchronous key-value store. Get reports absence via the
// bool; Set reports failure via the error. No transactions, no TTL.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}
