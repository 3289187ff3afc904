package chainedtable

import "iter"

// Range calls f for each key and value, bucket by bucket and in insertion
// order within a bucket. If f returns false, Range stops.
//
// Range walks the bucket array that is current when it starts. f may call
// Put: every key present when Range started is still visited exactly once,
// even if a Put triggers a rehash. Keys added during the walk may or may
// not be visited. After a rehash, values updated by f are not reflected
// in later callbacks.
func (t *Table[K, V]) Range(f func(key K, value V) bool) {
	buckets := t.buckets
	for i := range buckets {
		for _, e := range buckets[i] {
			if !f(e.key, e.value) {
				return
			}
		}
	}
}

// Keys returns an iterator over the stored keys with the same ordering and
// mutation guarantees as Range. Each use of the iterator starts a fresh walk.
func (t *Table[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.Range(func(k K, _ V) bool {
			return yield(k)
		})
	}
}

// All returns an iterator over key/value pairs. See Range.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.Range(yield)
	}
}
