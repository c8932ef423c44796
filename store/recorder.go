package store

// Recorder interface is implemented by anything returned from
// NewRecordingStore
type Recorder interface {
	KVPairs() map[string][]byte
}

// recordingStore wraps a KVStore and remembers every key that was changed.
// Deleted keys are recorded with a nil value.
type recordingStore struct {
	KVStore
	changes map[string][]byte
}

var _ Recorder = (*recordingStore)(nil)
var _ CacheableKVStore = (*recordingStore)(nil)

// NewRecordingStore initializes a recording store wrapping this
// base store, using cached alternative if possible
func NewRecordingStore(db KVStore) KVStore {
	return &recordingStore{
		KVStore: db,
		changes: make(map[string][]byte),
	}
}

// CacheWrap returns a cache whose writes go through the recorder when
// flushed.
func (r *recordingStore) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(r, NewNonAtomicBatch(r), nil)
}

// KVPairs returns the content of changes
func (r *recordingStore) KVPairs() map[string][]byte {
	return r.changes
}

// Set records the changes while performing
func (r *recordingStore) Set(key, value []byte) error {
	if err := r.KVStore.Set(key, value); err != nil {
		return err
	}
	r.changes[string(key)] = value
	return nil
}

// Delete records the changes while performing
func (r *recordingStore) Delete(key []byte) error {
	if err := r.KVStore.Delete(key); err != nil {
		return err
	}
	r.changes[string(key)] = nil
	return nil
}
