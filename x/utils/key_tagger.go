package utils

import (
	"encoding/hex"
	"strings"

	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/store"
	"github.com/tendermint/tendermint/libs/common"
)

// Tag values of KeyTagger for a written and a deleted key.
var (
	recordSet    = []byte("s")
	recordDelete = []byte("d")
)

// KeyTagger adds a DeliverTx tag for every key the wrapped handler wrote or
// deleted, so that clients can subscribe to changes of a wallet or of the
// contract.
type KeyTagger struct{}

var _ revshare.Decorator = KeyTagger{}

func NewKeyTagger() KeyTagger {
	return KeyTagger{}
}

func (KeyTagger) Check(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx, next revshare.Checker) (*revshare.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

func (KeyTagger) Deliver(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx, next revshare.Deliverer) (*revshare.DeliverResult, error) {
	recorder := store.NewRecordingStore(db)
	res, err := next.Deliver(ctx, recorder, tx)
	if err != nil {
		return nil, err
	}
	if r, ok := recorder.(store.Recorder); ok {
		res.Tags = append(res.Tags, changesToTags(r.KVPairs())...)
	}
	return res, nil
}

// changesToTags returns one tag per key, ordered by key. The key is upper
// case hex, as keys are binary.
func changesToTags(changes map[string][]byte) common.KVPairs {
	if len(changes) == 0 {
		return nil
	}
	tags := make(common.KVPairs, 0, len(changes))
	for key, value := range changes {
		op := recordSet
		if value == nil {
			op = recordDelete
		}
		hexKey := strings.ToUpper(hex.EncodeToString([]byte(key)))
		tags = append(tags, common.KVPair{Key: []byte(hexKey), Value: op})
	}
	tags.Sort()
	return tags
}
