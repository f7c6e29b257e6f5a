package mpproof

// Verifier reconstructs Merkle roots from flat proofs and assembles
// verdicts. It is pure and synchronous: Check performs all work on the
// caller's goroutine, returns a value, and retains no state between calls.
// A Verifier is safe for concurrent use by multiple goroutines because it
// carries nothing but an immutable HashFunc.
type Verifier struct {
	hs *hasher
}

// NewVerifier constructs a Verifier driven by the given hash primitive.
// The hash function is treated as an external collaborator: SHA256Hasher
// is the canonical configuration, but any reentrant HashFunc is accepted.
func NewVerifier(h HashFunc) (*Verifier, error) {
	hs, err := newHasher(h)
	if err != nil {
		return nil, err
	}
	return &Verifier{hs: hs}, nil
}

// DefaultVerifier returns a Verifier configured with the canonical SHA-256
// hash primitive.
func DefaultVerifier() *Verifier {
	v, _ := NewVerifier(SHA256Hasher)
	return v
}

// Check is the single verification operation: it validates proof's
// structure, reconstructs the root by size dispatch, and returns either a
// Correct verdict carrying the index hash and the confirmed present/absent
// key sets, or an Invalid verdict carrying the first structural rejection
// reason. Any structural failure short-circuits before any hashing runs.
func (v *Verifier) Check(proof *Proof) Verdict {
	if status := validate(proof); status != StatusCorrect {
		return invalid(status)
	}

	root, status := v.reconstructRoot(proof)
	if status != StatusCorrect {
		return invalid(status)
	}

	return Verdict{
		Status:      StatusCorrect,
		IndexHash:   Digest(v.hs.indexHash(root)),
		Entries:     proof.Entries,
		MissingKeys: proof.MissingKeys,
	}
}

// reconstructRoot dispatches on the combined size of ProofEntries and
// Entries: empty, singleton, or general (contour fold) cases.
func (v *Verifier) reconstructRoot(proof *Proof) (root [HashWidth]byte, status Status) {
	total := len(proof.ProofEntries) + len(proof.Entries)

	switch {
	case total == 0:
		return [HashWidth]byte{}, StatusCorrect

	case total == 1:
		return v.reconstructSingleton(proof)

	default:
		merged := mergeSorted(v.hs, proof)
		return contourFold(v.hs, merged), StatusCorrect
	}
}

// reconstructSingleton handles the |proof_entries|+|entries| = 1 case,
// including the NON_TERMINAL_NODE rejection for a lone branch-typed proof
// entry.
func (v *Verifier) reconstructSingleton(proof *Proof) (root [HashWidth]byte, status Status) {
	if len(proof.ProofEntries) == 1 {
		entry := proof.ProofEntries[0]
		if entry.Path.NodeType() == Branch {
			return [HashWidth]byte{}, StatusNonTerminalNode
		}
		return v.hs.singleEntryRoot(entry.Path, [HashWidth]byte(entry.Hash)), StatusCorrect
	}

	e := proof.Entries[0]
	vh := v.hs.leafValueHash(e.Value)
	return v.hs.singleEntryRoot(leafFromArray(e.Key), vh), StatusCorrect
}

// BatchCheck runs Check independently over each proof in proofs, returning
// one Verdict per input in order. Distinct Check calls share nothing, so
// BatchCheck is a thin convenience wrapper around that independence, not a
// new verification algorithm.
func (v *Verifier) BatchCheck(proofs []*Proof) []Verdict {
	verdicts := make([]Verdict, len(proofs))
	for i, p := range proofs {
		verdicts[i] = v.Check(p)
	}
	return verdicts
}

// BatchCheckConcurrent is BatchCheck, parallelized across a bounded worker
// pool. Since Check shares no state between calls, proofs may be checked
// out of order and recombined by index without any synchronization beyond
// the result slice's per-index writes.
func (v *Verifier) BatchCheckConcurrent(proofs []*Proof, workers int) []Verdict {
	if workers <= 0 {
		workers = 1
	}
	if workers > len(proofs) {
		workers = len(proofs)
	}
	if workers <= 1 {
		return v.BatchCheck(proofs)
	}

	verdicts := make([]Verdict, len(proofs))
	jobs := make(chan int)
	done := make(chan struct{})

	for w := 0; w < workers; w++ {
		go func() {
			for i := range jobs {
				verdicts[i] = v.Check(proofs[i])
			}
			done <- struct{}{}
		}()
	}
	for i := range proofs {
		jobs <- i
	}
	close(jobs)
	for w := 0; w < workers; w++ {
		<-done
	}
	return verdicts
}
