package chainedtable

// mix64Generic is the murmur3 fmix64 finalizer. mix64 is the same
// function, in assembly on amd64.
func mix64Generic(h uint64) uint64 {
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}
