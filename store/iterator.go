package store

import (
	"bytes"

	"github.com/google/btree"
)

// ascendBtree returns all cached items with keys in [start, end) in
// ascending order. nil start or end means unbounded.
func ascendBtree(bt *btree.BTree, start, end []byte) []entry {
	var items []entry
	collect := func(item btree.Item) bool {
		items = append(items, item.(entry))
		return true
	}
	switch {
	case start == nil && end == nil:
		bt.Ascend(collect)
	case start == nil:
		bt.AscendLessThan(entry{key: end}, collect)
	case end == nil:
		bt.AscendGreaterOrEqual(entry{key: start}, collect)
	default:
		bt.AscendRange(entry{key: start}, entry{key: end}, collect)
	}
	return items
}

// descendBtree returns all cached items with keys in [start, end) in
// descending order.
func descendBtree(bt *btree.BTree, start, end []byte) []entry {
	items := ascendBtree(bt, start, end)
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return items
}

// mergeIterator walks the cached entries and the parent iterator side by
// side. On equal keys the cache wins and a cached delete hides the parent
// entry.
type mergeIterator struct {
	cached    []entry
	parent    Iterator
	ascending bool
}

var _ Iterator = (*mergeIterator)(nil)

type side uint8

const (
	exhausted side = iota
	fromCache
	fromParent
	fromBoth
)

func newMergeIterator(cached []entry, parent Iterator, ascending bool) (*mergeIterator, error) {
	it := &mergeIterator{cached: cached, parent: parent, ascending: ascending}
	if err := it.dropDeleted(); err != nil {
		it.Close()
		return nil, err
	}
	return it, nil
}

func (i *mergeIterator) Valid() bool {
	return i.side() != exhausted
}

func (i *mergeIterator) Next() error {
	s := i.side()
	if s == exhausted {
		panic("advanced past the end")
	}
	if s != fromParent {
		i.cached = i.cached[1:]
	}
	if s != fromCache {
		if err := i.parent.Next(); err != nil {
			return err
		}
	}
	return i.dropDeleted()
}

func (i *mergeIterator) Key() []byte {
	if i.side() == fromParent {
		return i.parent.Key()
	}
	return i.head().key
}

func (i *mergeIterator) Value() []byte {
	if i.side() == fromParent {
		return i.parent.Value()
	}
	return i.head().value
}

func (i *mergeIterator) Close() {
	if i.parent != nil {
		i.parent.Close()
	}
	i.cached = nil
}

func (i *mergeIterator) head() entry {
	if len(i.cached) == 0 {
		panic("advanced past the end")
	}
	return i.cached[0]
}

// dropDeleted advances over cached deletes, and the parent keys they hide,
// until the head is a live entry.
func (i *mergeIterator) dropDeleted() error {
	for {
		s := i.side()
		if (s != fromCache && s != fromBoth) || !i.cached[0].deleted {
			return nil
		}
		i.cached = i.cached[1:]
		if s == fromBoth {
			if err := i.parent.Next(); err != nil {
				return err
			}
		}
	}
}

// side tells which source holds the next key in iteration order.
func (i *mergeIterator) side() side {
	cacheLeft := len(i.cached) > 0
	parentLeft := i.parent != nil && i.parent.Valid()
	if !cacheLeft {
		if parentLeft {
			return fromParent
		}
		return exhausted
	}
	if !parentLeft {
		return fromCache
	}
	cmp := bytes.Compare(i.cached[0].key, i.parent.Key())
	if !i.ascending {
		cmp = -cmp
	}
	switch {
	case cmp < 0:
		return fromCache
	case cmp > 0:
		return fromParent
	}
	return fromBoth
}
