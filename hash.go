package mpproof

import (
	"crypto/sha256"

	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/sha3"

	"github.com/flatmerkle/mpproof/internal/pool"
)

// Domain-separation prefix bytes. Wire-exact; never change or unify these
// with a generic tagged-hash scheme from another system.
const (
	prefixLeafValue byte = 0x00
	prefixIndex     byte = 0x03
	prefixMapNode   byte = 0x04
)

// HashFunc is the hash primitive the verifier is driven by: an opaque,
// reentrant cryptographic hash producing a HashWidth-byte digest, treated
// as an external collaborator. Any implementation may be supplied, though
// SHA-256 is the canonical configuration.
type HashFunc func(data []byte) [HashWidth]byte

// SHA256Hasher is the canonical hash backend.
func SHA256Hasher(data []byte) [HashWidth]byte {
	return sha256.Sum256(data)
}

// KeccakHasher is an alternate backend built on go-ethereum's Keccak256,
// useful for exercising the verifier against a second digest to confirm
// the fold/validator logic never hardcodes SHA-256 byte values, only
// sizes and domain-separation prefixes.
func KeccakHasher(data []byte) [HashWidth]byte {
	var out [HashWidth]byte
	copy(out[:], crypto.Keccak256(data))
	return out
}

// SHA3Hasher is a third alternate backend, built on the NIST-standardized
// SHA3-256 rather than go-ethereum's pre-standard Keccak256 variant. The
// two differ only in padding, so pairing them in a test is a stronger
// check that nothing downstream assumes Keccak's specific padding byte.
func SHA3Hasher(data []byte) [HashWidth]byte {
	return sha3.Sum256(data)
}

// hasher bundles a HashFunc with the domain-separated hash derivations.
type hasher struct {
	h HashFunc
}

func newHasher(h HashFunc) (*hasher, error) {
	if h == nil {
		return nil, errNilHashFunc
	}
	return &hasher{h: h}, nil
}

// leafValueHash computes H_leaf(v) = h(0x00 || v).
func (hs *hasher) leafValueHash(v []byte) [HashWidth]byte {
	buf := pool.HashScratchPool.Get(1 + len(v))
	defer pool.HashScratchPool.Put(buf)
	buf = append(buf, prefixLeafValue)
	buf = append(buf, v...)
	return hs.h(buf)
}

// singleEntryRoot computes H_single(path, vh) = h(0x04 || encodeFull(path) || vh).
func (hs *hasher) singleEntryRoot(path Path, vh [HashWidth]byte) [HashWidth]byte {
	buf := pool.HashScratchPool.Get(1 + fullEncodedLen() + HashWidth)
	defer pool.HashScratchPool.Put(buf)
	buf = append(buf, prefixMapNode)
	buf = append(buf, encodeFull(path)...)
	buf = append(buf, vh[:]...)
	return hs.h(buf)
}

// branchHash computes
// H_branch(L, R) = h(0x04 || L.hash || R.hash || encodeCompressed(L.path) || encodeCompressed(R.path)).
func (hs *hasher) branchHash(leftHash, rightHash [HashWidth]byte, leftPath, rightPath Path) [HashWidth]byte {
	lc := encodeCompressed(leftPath)
	rc := encodeCompressed(rightPath)
	buf := pool.HashScratchPool.Get(1 + HashWidth + HashWidth + len(lc) + len(rc))
	defer pool.HashScratchPool.Put(buf)
	buf = append(buf, prefixMapNode)
	buf = append(buf, leftHash[:]...)
	buf = append(buf, rightHash[:]...)
	buf = append(buf, lc...)
	buf = append(buf, rc...)
	return hs.h(buf)
}

// indexHash computes H_index(root) = h(0x03 || root).
func (hs *hasher) indexHash(root [HashWidth]byte) [HashWidth]byte {
	buf := pool.HashScratchPool.Get(1 + HashWidth)
	defer pool.HashScratchPool.Put(buf)
	buf = append(buf, prefixIndex)
	buf = append(buf, root[:]...)
	return hs.h(buf)
}

// fullEncodedLen is the length in bytes of encodeFull's output: HashWidth
// raw bytes plus one significant-bit-count byte.
func fullEncodedLen() int { return HashWidth + 1 }

// encodeFull is the "full form" path encoding: the HashWidth raw buffer
// bytes followed by the significant-bit count as a single unsigned byte.
func encodeFull(p Path) []byte {
	buf := make([]byte, 0, fullEncodedLen())
	raw := p.Bytes()
	buf = append(buf, raw[:]...)
	buf = append(buf, byte(p.n))
	return buf
}

// encodeCompressed is the "compressed form" path encoding, used only in
// branch hashing: the minimum whole bytes needed to hold n significant
// bits, followed by n as one byte.
func encodeCompressed(p Path) []byte {
	nBytes := (p.n + 7) / 8
	buf := make([]byte, 0, nBytes+1)
	raw := p.Bytes()
	buf = append(buf, raw[:nBytes]...)
	buf = append(buf, byte(p.n))
	return buf
}
