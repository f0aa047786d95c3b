package rsademo

import (
	"math/big"
	"runtime"
)

// ZeroizeInt overwrites the limbs backing x and sets x to zero.
//
// big.Int may have copied its limbs during earlier arithmetic, so this is
// best effort only. It still shortens the lifetime of the value held by x.
func ZeroizeInt(x *big.Int) {
	if x == nil {
		return
	}
	words := x.Bits()
	for i := range words {
		words[i] = 0
	}
	x.SetInt64(0)
	// Prevent dead store elimination per golang/go#33325
	runtime.KeepAlive(words)
}
