package store

// batchOp is a pending write. A nil value marks a delete.
type batchOp struct {
	key   []byte
	value []byte
}

// NonAtomicBatch queues writes and replays them in order on Write. A failed
// write leaves the previous ones applied, so only use it in front of stores
// that keep their data in memory.
type NonAtomicBatch struct {
	out SetDeleter
	ops []batchOp
}

var _ Batch = (*NonAtomicBatch)(nil)

// NewNonAtomicBatch returns an empty batch writing to out.
func NewNonAtomicBatch(out SetDeleter) *NonAtomicBatch {
	return &NonAtomicBatch{out: out}
}

func (b *NonAtomicBatch) Set(key, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	b.ops = append(b.ops, batchOp{key: key, value: value})
	return nil
}

func (b *NonAtomicBatch) Delete(key []byte) error {
	b.ops = append(b.ops, batchOp{key: key})
	return nil
}

// Reset drops all queued writes.
func (b *NonAtomicBatch) Reset() {
	b.ops = nil
}

// Write replays the queue and empties it. It stops at the first failure.
func (b *NonAtomicBatch) Write() error {
	ops := b.ops
	b.ops = nil
	for _, op := range ops {
		var err error
		if op.value == nil {
			err = b.out.Delete(op.key)
		} else {
			err = b.out.Set(op.key, op.value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
