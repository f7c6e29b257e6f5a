package mpproof

import "fmt"

// Sentinel construction-time errors. These are never part of a Verdict:
// Verdict is reserved for the structural rejection taxonomy, and anything
// else (a nil hash primitive, a malformed key) is fatal and outside the
// checked taxonomy.
var (
	// errNilHashFunc is returned by NewVerifier when given a nil HashFunc.
	errNilHashFunc = fmt.Errorf("mpproof: hash function must not be nil")
)

// InvalidKeySizeError and InvalidBitCountError are defined in path.go,
// alongside the Path constructors that produce them.
