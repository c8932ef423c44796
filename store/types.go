//nolint
package store

import "github.com/iov-one/revshare"

// Move references for all storage types into this package
// for shorter names everywhere

type (
	ReadOnlyKVStore  = revshare.ReadOnlyKVStore
	SetDeleter       = revshare.SetDeleter
	KVStore          = revshare.KVStore
	Batch            = revshare.Batch
	Iterator         = revshare.Iterator
	CacheableKVStore = revshare.CacheableKVStore
	KVCacheWrap      = revshare.KVCacheWrap
	CommitKVStore    = revshare.CommitKVStore
	CommitID         = revshare.CommitID
	Model            = revshare.Model
)

var Pair = revshare.Pair
