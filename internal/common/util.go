// Package common holds small helpers shared by the front end and the core.
package common

// WipeByteArray overwrites b with zeros. It is used on PIN buffers once they
// have been handed to the session. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
