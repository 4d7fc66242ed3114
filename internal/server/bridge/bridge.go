package main

/*
#include <stdbool.h>
#include <stdint.h>
*/
import "C"
import (
	"fmt"
	"time"
	"unsafe"

	"cubefour/internal/cube"
)

//export IsLegal
func IsLegal(position *C.char, x, y, z C.int) C.bool {
	ok, err := isLegal(C.GoString(position), cube.Coord{X: int(x), Y: int(y), Z: int(z)})
	if err != nil {
		return C.bool(false)
	}
	return C.bool(ok)
}

// GetLegalBitmask writes one byte per cell (lattice index order) into
// maskOut and returns the number of legal cells, or -1 if the position does
// not decode or the buffer is too small.
//
//export GetLegalBitmask
func GetLegalBitmask(position *C.char, maskOut *C.int8_t, maskLen C.int) C.int {
	start := time.Now()
	mask, err := legalMask(C.GoString(position))
	if err != nil || int(maskLen) < len(mask) {
		return -1
	}
	out := unsafe.Slice((*int8)(unsafe.Pointer(maskOut)), int(maskLen))
	count := 0
	for i := range out {
		out[i] = 0
		if i < len(mask) && mask[i] != 0 {
			out[i] = 1
			count++
		}
	}

	elapsed := time.Since(start)
	if elapsed > 100*time.Millisecond {
		fmt.Printf("[Go Bridge] SLOW CALL: cells=%d, legalCount=%d, took=%v\n", len(mask), count, elapsed)
	}
	return C.int(count)
}

// CheckWinner returns 1 or 2 for the winning player, 3 for a draw, 0 while
// the game is running and -1 for an undecodable position.
//
//export CheckWinner
func CheckWinner(position *C.char) C.int8_t {
	return C.int8_t(result(C.GoString(position)))
}
