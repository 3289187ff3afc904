//go:build !amd64

package chainedtable

func mix64(h uint64) uint64 {
	return mix64Generic(h)
}
