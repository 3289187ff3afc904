package main

import (
	"fmt"

	. "github.com/mmcloughlin/avo/build"
	"github.com/mmcloughlin/avo/operand"
)

//go:generate go run asm.go -out ../mix_amd64.s -stubs ../mix_amd64.go -pkg chainedtable

func main() {
	TEXT("mix64", NOSPLIT, "func(h uint64) uint64")
	Doc("mix64 applies the murmur3 fmix64 finalizer to h.")

	Comment("Load h")
	h := Load(Param("h"), GP64())
	t := GP64()

	xorShift := func() {
		Comment("h ^= h >> 33")
		MOVQ(h, t)
		SHRQ(operand.U8(33), t)
		XORQ(t, h)
	}

	// Same constants as mix64Generic in mix.go.
	xorShift()
	for _, k := range []uint64{0xff51afd7ed558ccd, 0xc4ceb9fe1a85ec53} {
		Comment(fmt.Sprintf("h *= %#x", k))
		MOVQ(operand.U64(k), t)
		IMULQ(t, h)
		xorShift()
	}

	Comment("Return h")
	Store(h, ReturnIndex(0))
	RET()
	Generate()
}
