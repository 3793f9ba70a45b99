// Package store provides the durable key-value layer behind the tracker.
//
// The tracker persists two JSON blobs, one per key, and always overwrites
// them wholesale; there are no partial or merge writes.
package store

// KV is the synchronous key-value contract the tracker persists through.
type KV interface {
	// Get returns the value stored under key, with ok=false when the key
	// has never been written.
	Get(key string) (value string, ok bool, err error)
	// Set overwrites the value stored under key.
	Set(key, value string) error
}
