// Package ct holds the constant-time byte comparisons the field adapters use
// to pick a canonical square root.
package ct

// GreaterLE returns 1 if the little-endian integer a is strictly greater
// than b and 0 otherwise. a and b must have the same length. The running time
// depends only on the length.
func GreaterLE(a, b []byte) int {
	gt, eq := 0, 1
	for i := len(a) - 1; i >= 0; i-- {
		gt, eq = step(gt, eq, a[i], b[i])
	}
	return gt
}

// GreaterBE is GreaterLE for big-endian input.
func GreaterBE(a, b []byte) int {
	gt, eq := 0, 1
	for i := 0; i < len(a); i++ {
		gt, eq = step(gt, eq, a[i], b[i])
	}
	return gt
}

// step folds one byte pair, most significant first. x > y sets gt only while
// every more significant byte was equal.
func step(gt, eq int, xb, yb byte) (int, int) {
	x, y := int(xb), int(yb)
	gt |= eq & ((y - x) >> 31 & 1)
	eq &= ((x ^ y) - 1) >> 31 & 1
	return gt, eq
}
