package reftrie_test

import (
	"testing"

	"github.com/flatmerkle/mpproof"
	"github.com/flatmerkle/mpproof/internal/reftrie"
)

func TestEmptyTrieRootIsZero(t *testing.T) {
	tr := reftrie.New(mpproof.SHA256Hasher, nil)
	if tr.Root() != [mpproof.HashWidth]byte{} {
		t.Fatal("expected zero root for empty trie")
	}
}

func TestSingleEntryRootIsDeterministic(t *testing.T) {
	var k [mpproof.HashWidth]byte
	k[0] = 0x42
	tr1 := reftrie.New(mpproof.SHA256Hasher, []reftrie.Entry{{Key: k, Value: []byte("v")}})
	tr2 := reftrie.New(mpproof.SHA256Hasher, []reftrie.Entry{{Key: k, Value: []byte("v")}})
	if tr1.Root() != tr2.Root() {
		t.Fatal("expected identical roots for identical inputs")
	}
}

func TestFlatProofRevealsRequestedAndHidesRest(t *testing.T) {
	var k0, k1, k2 [mpproof.HashWidth]byte
	k0[0], k1[0], k2[0] = 0x00, 0x40, 0x80
	entries := []reftrie.Entry{
		{Key: k0, Value: []byte("a")},
		{Key: k1, Value: []byte("b")},
		{Key: k2, Value: []byte("c")},
	}
	tr := reftrie.New(mpproof.SHA256Hasher, entries)

	revealPath, err := mpproof.NewLeaf(k1[:])
	if err != nil {
		t.Fatal(err)
	}
	proofEntries := tr.FlatProof([]mpproof.Path{revealPath})

	for _, pe := range proofEntries {
		if mpproof.IsPrefixOf(pe.Path, revealPath) {
			t.Fatalf("proof entry %v embeds the revealed path", pe.Path)
		}
	}

	v, err := mpproof.NewVerifier(mpproof.SHA256Hasher)
	if err != nil {
		t.Fatal(err)
	}
	value, ok := tr.Value(k1)
	if !ok {
		t.Fatal("expected k1 to be present")
	}
	proof := &mpproof.Proof{
		ProofEntries: proofEntries,
		Entries:      []mpproof.MapEntry{{Key: k1, Value: value}},
	}
	verdict := v.Check(proof)
	if !verdict.Correct() {
		t.Fatalf("expected CORRECT, got %s", verdict.Status)
	}
	if verdict.IndexHash != mpproof.Digest(tr.IndexHash()) {
		t.Fatalf("index hash = %x, want %x", verdict.IndexHash, tr.IndexHash())
	}
}

func TestLeavesCoverEveryEntry(t *testing.T) {
	var k0, k1 [mpproof.HashWidth]byte
	k0[0], k1[0] = 0x10, 0x90
	tr := reftrie.New(mpproof.SHA256Hasher, []reftrie.Entry{
		{Key: k0, Value: []byte("a")},
		{Key: k1, Value: []byte("b")},
	})
	leaves := tr.Leaves()
	if len(leaves) != 2 {
		t.Fatalf("expected 2 leaves, got %d", len(leaves))
	}
	for _, l := range leaves {
		if l.Path.NodeType() != mpproof.Leaf {
			t.Fatalf("expected leaf-typed path, got %s", l.Path.NodeType())
		}
	}
}
