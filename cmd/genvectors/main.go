// Command genvectors builds small reference tries with internal/reftrie,
// extracts flat proofs from them, and writes internal/vectors JSON fixtures
// used by the package test suite.
package main

import (
	"crypto/sha256"
	"fmt"
	"os"

	"github.com/flatmerkle/mpproof"
	"github.com/flatmerkle/mpproof/internal/reftrie"
	"github.com/flatmerkle/mpproof/internal/testutils"
	"github.com/flatmerkle/mpproof/internal/vectors"
)

func fullKey(b byte) [mpproof.HashWidth]byte {
	var k [mpproof.HashWidth]byte
	k[0] = b
	return k
}

func proofEntryVector(pe mpproof.ProofEntry) vectors.ProofEntryVector {
	buf := pe.Path.Bytes()
	return vectors.ProofEntryVector{
		PathHex: testutils.BytesToHex(buf[:]),
		N:       pe.Path.NumSignificantBits(),
		HashHex: testutils.BytesToHex(pe.Hash),
	}
}

func mapEntryVector(k [mpproof.HashWidth]byte, v []byte) vectors.MapEntryVector {
	return vectors.MapEntryVector{
		KeyHex:   testutils.BytesToHex(k[:]),
		ValueHex: testutils.BytesToHex(v),
	}
}

func main() {
	verifyVectors := buildVerifyVectors()
	derivationVectors := buildDerivationVectors()

	if err := vectors.SaveVerifyVectors("internal/vectors/testdata/verify_vectors.json", verifyVectors); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := vectors.SaveDerivationVectors("internal/vectors/testdata/derivation_vectors.json", derivationVectors); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("wrote internal/vectors/testdata/verify_vectors.json")
	fmt.Println("wrote internal/vectors/testdata/derivation_vectors.json")
}

func buildVerifyVectors() []vectors.VerifyVector {
	v := mpproof.DefaultVerifier()
	var out []vectors.VerifyVector

	// S1: empty proof.
	{
		verdict := v.Check(&mpproof.Proof{})
		out = append(out, vectors.VerifyVector{
			Name:              "S1_empty",
			ExpectedStatus:    verdict.Status.String(),
			ExpectedIndexHash: testutils.BytesToHex(verdict.IndexHash[:]),
		})
	}

	// S2: singleton present.
	{
		k, val := fullKey(0x11), []byte{0xAA}
		proof := &mpproof.Proof{Entries: []mpproof.MapEntry{{Key: k, Value: val}}}
		verdict := v.Check(proof)
		out = append(out, vectors.VerifyVector{
			Name:              "S2_singleton_present",
			Entries:           []vectors.MapEntryVector{mapEntryVector(k, val)},
			ExpectedStatus:    verdict.Status.String(),
			ExpectedIndexHash: testutils.BytesToHex(verdict.IndexHash[:]),
		})
	}

	// S3: singleton branch proof-entry -> NON_TERMINAL_NODE.
	{
		branchPath, _ := mpproof.NewPath(fullKey(0x00)[:], 1)
		h := sha256.Sum256([]byte("S3"))
		proof := &mpproof.Proof{ProofEntries: []mpproof.ProofEntry{{Path: branchPath, Hash: h[:]}}}
		verdict := v.Check(proof)
		out = append(out, vectors.VerifyVector{
			Name:           "S3_singleton_branch",
			ProofEntries:   []vectors.ProofEntryVector{proofEntryVector(proof.ProofEntries[0])},
			ExpectedStatus: verdict.Status.String(),
		})
	}

	// S7: two sibling leaves, reconstructed via a real reftrie to pin a
	// cross-checked index hash, also used as the base for S4/S5 below.
	k0, k1 := fullKey(0x00), fullKey(0x80)
	v0, v1 := []byte("left"), []byte("right")
	trie := reftrie.New(mpproof.SHA256Hasher, []reftrie.Entry{{Key: k0, Value: v0}, {Key: k1, Value: v1}})
	proofEntries := trie.Leaves()
	{
		proof := &mpproof.Proof{ProofEntries: proofEntries}
		verdict := v.Check(proof)
		entryVectors := make([]vectors.ProofEntryVector, len(proofEntries))
		for i, pe := range proofEntries {
			entryVectors[i] = proofEntryVector(pe)
		}
		out = append(out, vectors.VerifyVector{
			Name:              "S7_two_siblings",
			ProofEntries:      entryVectors,
			ExpectedStatus:    verdict.Status.String(),
			ExpectedIndexHash: testutils.BytesToHex(verdict.IndexHash[:]),
		})
		if got, want := verdict.IndexHash, trie.IndexHash(); got != want {
			panic("reftrie/verifier index hash mismatch")
		}
	}

	// S4: duplicate one of S7's proof entries.
	{
		dup := []mpproof.ProofEntry{proofEntries[0], proofEntries[0]}
		verdict := v.Check(&mpproof.Proof{ProofEntries: dup})
		entryVectors := make([]vectors.ProofEntryVector, len(dup))
		for i, pe := range dup {
			entryVectors[i] = proofEntryVector(pe)
		}
		out = append(out, vectors.VerifyVector{
			Name:           "S4_duplicate_path",
			ProofEntries:   entryVectors,
			ExpectedStatus: verdict.Status.String(),
		})
	}

	// S5: S7's proof entries out of order.
	{
		reversed := []mpproof.ProofEntry{proofEntries[1], proofEntries[0]}
		verdict := v.Check(&mpproof.Proof{ProofEntries: reversed})
		entryVectors := make([]vectors.ProofEntryVector, len(reversed))
		for i, pe := range reversed {
			entryVectors[i] = proofEntryVector(pe)
		}
		out = append(out, vectors.VerifyVector{
			Name:           "S5_invalid_order",
			ProofEntries:   entryVectors,
			ExpectedStatus: verdict.Status.String(),
		})
	}

	// S6: a proof entry whose path prefixes a requested key.
	{
		coveringPath, _ := mpproof.NewPath(fullKey(0x40)[:], 2)
		h := sha256.Sum256([]byte("S6"))
		coveredKey := fullKey(0x40) // 0b01000000..., prefixed by the 2-bit path "01"
		proof := &mpproof.Proof{
			ProofEntries: []mpproof.ProofEntry{{Path: coveringPath, Hash: h[:]}},
			Entries:      []mpproof.MapEntry{{Key: coveredKey, Value: []byte("v")}},
		}
		verdict := v.Check(proof)
		out = append(out, vectors.VerifyVector{
			Name:           "S6_embedded_path",
			ProofEntries:   []vectors.ProofEntryVector{proofEntryVector(proof.ProofEntries[0])},
			Entries:        []vectors.MapEntryVector{mapEntryVector(coveredKey, []byte("v"))},
			ExpectedStatus: verdict.Status.String(),
		})
	}

	return out
}

func buildDerivationVectors() []vectors.DerivationVector {
	h := sha256.Sum256(append([]byte{0x00}, []byte("payload")...))
	return []vectors.DerivationVector{
		{
			Name:     "leaf_value_hash",
			Kind:     "leaf",
			InputHex: testutils.BytesToHex([]byte("payload")),
			Expected: testutils.BytesToHex(h[:]),
		},
	}
}
