// Package chainedtable implements a generic hash table that resolves
// collisions by chaining: every bucket is a slice of entries whose keys
// share the same hash modulo capacity.
//
// The table grows by 50% whenever the ratio of stored entries to buckets
// exceeds its load threshold, redistributing every entry into the new
// bucket array before Put returns. There is no Delete.
//
// A Table is not safe for concurrent use. Callers sharing one across
// goroutines must serialize all access, including iteration.
package chainedtable

import (
	"fmt"
	"log/slog"
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// bucket holds entries in insertion order.
type bucket[K comparable, V any] []entry[K, V]

type hashFunc[K comparable] func(k K) uint64

// Table maps unique keys to values.
type Table[K comparable, V any] struct {
	// buckets is the current generation. len(buckets) is the capacity.
	buckets       []bucket[K, V]
	elemCount     int
	loadThreshold float64
	loadCheck     LoadCheck
	hashFunc      hashFunc[K]
	logger        *slog.Logger

	// stats
	resizeGenerations int
	lookups           int64
	probes            int64
}

// New returns an empty table with capacity buckets that grows once
// Len()/Cap() exceeds loadThreshold. It panics if capacity or
// loadThreshold is not positive. See Make for the defaulted form.
func New[K comparable, V any](capacity int, loadThreshold float64) *Table[K, V] {
	return Make[K, V](WithCapacity(capacity), WithLoadThreshold(loadThreshold))
}

// Put associates v with k, replacing any earlier value for k.
func (t *Table[K, V]) Put(k K, v V) {
	i := t.index(k, len(t.buckets))
	b := t.buckets[i]
	for j := range b {
		t.probes++ // stats
		if b[j].key == k {
			if debug {
				fmt.Println("put: updating existing key: bucket:", i, "position:", j)
			}
			b[j].value = v
			return
		}
	}
	t.buckets[i] = append(b, entry[K, V]{key: k, value: v})
	t.elemCount++

	if t.overloaded(t.elemCount, len(t.buckets)) {
		t.rehash()
	}
}

// Contains reports whether k is stored in the table.
func (t *Table[K, V]) Contains(k K) bool {
	t.lookups++ // stats
	return t.find(k) != nil
}

// Get returns the value stored for k. If k is absent it returns the zero
// value and a *NonExistentKeyError carrying k.
func (t *Table[K, V]) Get(k K) (V, error) {
	t.lookups++ // stats
	if e := t.find(k); e != nil {
		return e.value, nil
	}
	var zero V
	return zero, &NonExistentKeyError[K]{Key: k}
}

// Len returns the number of distinct keys stored.
func (t *Table[K, V]) Len() int {
	return t.elemCount
}

// Cap returns the current number of buckets.
func (t *Table[K, V]) Cap() int {
	return len(t.buckets)
}

func (t *Table[K, V]) index(k K, capacity int) int {
	return int(t.hashFunc(k) % uint64(capacity))
}

func (t *Table[K, V]) find(k K) *entry[K, V] {
	b := t.buckets[t.index(k, len(t.buckets))]
	for j := range b {
		t.probes++ // stats
		if b[j].key == k {
			return &b[j]
		}
	}
	return nil
}

// overloaded reports whether count entries in capacity buckets
// exceed the load threshold under the table's LoadCheck.
func (t *Table[K, V]) overloaded(count, capacity int) bool {
	if t.loadCheck == TruncatedRatio {
		return float64(count/capacity) > t.loadThreshold
	}
	return float64(count)/float64(capacity) > t.loadThreshold
}

// rehash replaces the bucket array with a larger one and moves every entry
// into it. Capacity grows in 50% steps until the load check passes, which
// for any reasonable threshold is a single step. The old generation is
// left untouched so an in-progress Range can keep walking it.
func (t *Table[K, V]) rehash() {
	oldCapacity := len(t.buckets)
	newCapacity := oldCapacity
	for t.overloaded(t.elemCount, newCapacity) {
		newCapacity = nextCapacity(newCapacity)
	}

	buckets := make([]bucket[K, V], newCapacity)
	var moved int
	for _, b := range t.buckets {
		for _, e := range b {
			i := t.index(e.key, newCapacity)
			buckets[i] = append(buckets[i], e)
			moved++
		}
	}
	if debug {
		if moved != t.elemCount {
			panic(fmt.Sprintf("impossible: rehash moved %d entries, table holds %d", moved, t.elemCount))
		}
	}

	t.buckets = buckets
	t.resizeGenerations++
	t.logger.Debug("rehash",
		"from", oldCapacity,
		"to", newCapacity,
		"entries", t.elemCount,
		"generation", t.resizeGenerations)
}

// nextCapacity grows capacity by half, and by at least one bucket.
func nextCapacity(capacity int) int {
	n := capacity + capacity/2
	if n == capacity {
		n++
	}
	return n
}

const debug = false
