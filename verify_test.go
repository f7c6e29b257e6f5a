package mpproof_test

import (
	"testing"

	"github.com/flatmerkle/mpproof"
	"github.com/flatmerkle/mpproof/internal/testutils"
	"github.com/flatmerkle/mpproof/internal/vectors"
)

func mustProofEntry(t *testing.T, pv vectors.ProofEntryVector) mpproof.ProofEntry {
	t.Helper()
	buf := testutils.MustHexToBytes(pv.PathHex)
	path, err := mpproof.NewPath(buf, pv.N)
	if err != nil {
		t.Fatalf("NewPath(%s, %d): %v", pv.PathHex, pv.N, err)
	}
	return mpproof.ProofEntry{Path: path, Hash: testutils.MustHexToBytes(pv.HashHex)}
}

func mustMapEntry(t *testing.T, mv vectors.MapEntryVector) mpproof.MapEntry {
	t.Helper()
	key := [mpproof.HashWidth]byte(testutils.MustHexToBytes(mv.KeyHex))
	return mpproof.MapEntry{Key: key, Value: testutils.MustHexToBytes(mv.ValueHex)}
}

func toProof(t *testing.T, vv vectors.VerifyVector) *mpproof.Proof {
	t.Helper()
	proof := &mpproof.Proof{}
	for _, pv := range vv.ProofEntries {
		proof.ProofEntries = append(proof.ProofEntries, mustProofEntry(t, pv))
	}
	for _, mv := range vv.Entries {
		proof.Entries = append(proof.Entries, mustMapEntry(t, mv))
	}
	for _, k := range vv.MissingKeys {
		proof.MissingKeys = append(proof.MissingKeys, mpproof.MissingKey(testutils.MustHexToBytes(k)))
	}
	return proof
}

func TestCheckGoldenVectors(t *testing.T) {
	vecs, err := vectors.LoadVerifyVectors("internal/vectors/testdata/verify_vectors.json")
	if err != nil {
		t.Fatalf("loading golden vectors: %v", err)
	}
	if len(vecs) == 0 {
		t.Fatal("no golden vectors loaded")
	}

	v := mpproof.DefaultVerifier()
	for _, vv := range vecs {
		vv := vv
		t.Run(vv.Name, func(t *testing.T) {
			proof := toProof(t, vv)
			verdict := v.Check(proof)
			if got, want := verdict.Status.String(), vv.ExpectedStatus; got != want {
				t.Fatalf("status = %s, want %s", got, want)
			}
			if vv.ExpectedIndexHash != "" {
				want := testutils.MustHexToBytes(vv.ExpectedIndexHash)
				got := verdict.IndexHash
				if testutils.BytesToHex(got[:]) != testutils.BytesToHex(want) {
					t.Fatalf("index hash = %x, want %x", got, want)
				}
			}
		})
	}
}

func TestCheckEmpty(t *testing.T) {
	v := mpproof.DefaultVerifier()
	verdict := v.Check(&mpproof.Proof{})
	if !verdict.Correct() {
		t.Fatalf("expected CORRECT, got %s", verdict.Status)
	}
}

func TestCheckSingletonBranchIsNonTerminal(t *testing.T) {
	v := mpproof.DefaultVerifier()
	var buf [mpproof.HashWidth]byte
	path, err := mpproof.NewPath(buf[:], 1)
	if err != nil {
		t.Fatal(err)
	}
	hash := make([]byte, mpproof.HashWidth)
	verdict := v.Check(&mpproof.Proof{ProofEntries: []mpproof.ProofEntry{{Path: path, Hash: hash}}})
	if verdict.Status != mpproof.StatusNonTerminalNode {
		t.Fatalf("status = %s, want NON_TERMINAL_NODE", verdict.Status)
	}
}

func TestCheckInvalidHashSize(t *testing.T) {
	v := mpproof.DefaultVerifier()
	leaf, err := mpproof.NewLeaf(make([]byte, mpproof.HashWidth))
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range []int{31, 33} {
		verdict := v.Check(&mpproof.Proof{ProofEntries: []mpproof.ProofEntry{{Path: leaf, Hash: make([]byte, n)}}})
		if verdict.Status != mpproof.StatusInvalidHashSize {
			t.Fatalf("hash size %d: status = %s, want INVALID_HASH_SIZE", n, verdict.Status)
		}
	}
}

func TestBatchCheckConcurrentMatchesSequential(t *testing.T) {
	v := mpproof.DefaultVerifier()
	var proofs []*mpproof.Proof
	for i := 0; i < 10; i++ {
		var key [mpproof.HashWidth]byte
		key[0] = byte(i)
		proofs = append(proofs, &mpproof.Proof{Entries: []mpproof.MapEntry{{Key: key, Value: []byte{byte(i)}}}})
	}

	sequential := v.BatchCheck(proofs)
	concurrent := v.BatchCheckConcurrent(proofs, 4)

	if len(sequential) != len(concurrent) {
		t.Fatalf("length mismatch: %d vs %d", len(sequential), len(concurrent))
	}
	for i := range sequential {
		if sequential[i].Status != concurrent[i].Status || sequential[i].IndexHash != concurrent[i].IndexHash {
			t.Fatalf("verdict[%d] mismatch: %+v vs %+v", i, sequential[i], concurrent[i])
		}
	}
}
