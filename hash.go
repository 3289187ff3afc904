package chainedtable

import (
	"hash/maphash"
	"reflect"
	"unsafe"

	"github.com/dchest/siphash"
)

// SipHash key for string keys. Fixed so string hashes, and therefore
// bucket placement and iteration order, are the same on every run.
const (
	sipKey0 = 0x736f6d6570736575
	sipKey1 = 0x646f72616e646f6d
)

// comparableSeed is used for key types without a dedicated hash.
var comparableSeed = maphash.MakeSeed()

// defaultHashFunc picks a hash for K once, by kind, so that named types
// such as `type UserID int64` get the same treatment as their underlying
// type.
func defaultHashFunc[K comparable]() hashFunc[K] {
	typ := reflect.TypeFor[K]()
	switch typ.Kind() {
	case reflect.String:
		return func(k K) uint64 {
			return hashString(*(*string)(unsafe.Pointer(&k)))
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return integerHashFunc[K](typ.Size())
	default:
		return func(k K) uint64 {
			return maphash.Comparable(comparableSeed, k)
		}
	}
}

func hashString(s string) uint64 {
	return siphash.Hash(sipKey0, sipKey1, unsafe.Slice(unsafe.StringData(s), len(s)))
}

// integerHashFunc reads the key's bits at their natural width and mixes
// them, so small sequential keys spread across buckets.
func integerHashFunc[K comparable](size uintptr) hashFunc[K] {
	switch size {
	case 1:
		return func(k K) uint64 { return mix64(uint64(*(*uint8)(unsafe.Pointer(&k)))) }
	case 2:
		return func(k K) uint64 { return mix64(uint64(*(*uint16)(unsafe.Pointer(&k)))) }
	case 4:
		return func(k K) uint64 { return mix64(uint64(*(*uint32)(unsafe.Pointer(&k)))) }
	case 8:
		return func(k K) uint64 { return mix64(*(*uint64)(unsafe.Pointer(&k))) }
	default:
		panic("impossible integer size")
	}
}
