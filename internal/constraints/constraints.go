// Package constraints holds type constraints shared by the generic helpers.
package constraints

// Byteseq is satisfied by string and byte slice types,
// the input forms accepted by the parsers.
type Byteseq interface {
	~string | ~[]byte
}
