package mpproof

// validate runs the three structural checks against proof, in priority
// order. The first failure short-circuits with its Status; StatusCorrect
// means proceed to root reconstruction.
func validate(proof *Proof) Status {
	if s := validateOrder(proof.ProofEntries); s != StatusCorrect {
		return s
	}
	if s := validateHashSize(proof.ProofEntries); s != StatusCorrect {
		return s
	}
	if s := validateEmbedding(proof); s != StatusCorrect {
		return s
	}
	return StatusCorrect
}

// validateOrder checks every adjacent pair (p[i-1], p[i]) in proof_entries,
// as given, for duplicate, embedded, or out-of-order paths. The ordering
// invariant this establishes — that no two proof entries share a path and
// no proof-entry path is a prefix of another — is what makes the contour
// fold well-defined.
func validateOrder(entries []ProofEntry) Status {
	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1].Path, entries[i].Path
		switch c := Compare(prev, cur); {
		case c == 0:
			return StatusDuplicatePath
		case c < 0:
			if IsPrefixOf(prev, cur) {
				return StatusEmbeddedPath
			}
		case c > 0:
			return StatusInvalidOrder
		}
	}
	return StatusCorrect
}

// validateHashSize requires every proof-entry hash to be exactly HashWidth
// bytes.
func validateHashSize(entries []ProofEntry) Status {
	for _, e := range entries {
		if len(e.Hash) != HashWidth {
			return StatusInvalidHashSize
		}
	}
	return StatusCorrect
}

// validateEmbedding rejects any proof-entry path that is a prefix of a
// requested key's full-width leaf path: such a proof entry would make the
// requested key's membership ambiguous, since the client cannot tell what
// lies under that subtree.
//
// This is the linear-scan form, O(m·r) for m proof entries and r
// requested keys.
//
// TODO: proof_entries is already known to be sorted and prefix-free by the
// time validateEmbedding runs (validateOrder guarantees it); a binary
// search for each requested leaf path's covering proof entry would bring
// this to O((m+r)·log m). Not implemented — see DESIGN.md.
func validateEmbedding(proof *Proof) Status {
	leafPaths := make([]Path, 0, len(proof.Entries)+len(proof.MissingKeys))
	for _, e := range proof.Entries {
		leafPaths = append(leafPaths, leafFromArray(e.Key))
	}
	for _, k := range proof.MissingKeys {
		leafPaths = append(leafPaths, leafFromArray(k))
	}

	for _, pe := range proof.ProofEntries {
		for _, lp := range leafPaths {
			if IsPrefixOf(pe.Path, lp) {
				return StatusEmbeddedPath
			}
		}
	}
	return StatusCorrect
}
