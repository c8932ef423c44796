package orm

import (
	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/errors"
)

// RegisterQuery exposes the whole database under "/", addressed by the full
// database keys.
func RegisterQuery(qr revshare.QueryRouter) {
	qr.Register("/", rawQuery{})
}

type rawQuery struct{}

func (rawQuery) Query(db revshare.ReadOnlyKVStore, mod string, data []byte) ([]revshare.Model, error) {
	switch mod {
	case revshare.KeyQueryMod:
		value, err := db.Get(data)
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, nil
		}
		return []revshare.Model{revshare.Pair(data, value)}, nil
	case revshare.PrefixQueryMod:
		return queryPrefix(db, data)
	default:
		return nil, errors.Wrapf(ErrInvalidQuery, "unknown mod: %q", mod)
	}
}

func queryPrefix(db revshare.ReadOnlyKVStore, prefix []byte) ([]revshare.Model, error) {
	start, end := prefixRange(prefix)
	itr, err := db.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	return ConsumeIterator(itr)
}

// ConsumeIterator reads all remaining entries and closes the iterator.
func ConsumeIterator(itr revshare.Iterator) ([]revshare.Model, error) {
	defer itr.Close()

	var res []revshare.Model
	for itr.Valid() {
		res = append(res, revshare.Pair(itr.Key(), itr.Value()))
		if err := itr.Next(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// prefixRange returns the [start, end) range of all keys starting with
// prefix. A nil end is unbounded, which is the case for an empty prefix or
// one made of 0xFF bytes only.
func prefixRange(prefix []byte) ([]byte, []byte) {
	if len(prefix) == 0 {
		return nil, nil
	}
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return prefix, end
		}
	}
	return prefix, nil
}
