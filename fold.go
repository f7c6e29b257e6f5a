package mpproof

import "sort"

// foldEntry is a (path, digest) pair ready for folding: either a supplied
// proof entry (hash already validated to be HashWidth bytes) or a
// synthesized leaf from a requested-present MapEntry.
type foldEntry struct {
	path Path
	hash [HashWidth]byte
}

// mergeSorted synthesizes a leaf foldEntry for every MapEntry, merges it
// with the supplied proof entries, and sorts the result ascending by path's
// total order. This is the input-preparation step the contour fold runs on.
func mergeSorted(hs *hasher, proof *Proof) []foldEntry {
	merged := make([]foldEntry, 0, len(proof.ProofEntries)+len(proof.Entries))
	for _, pe := range proof.ProofEntries {
		merged = append(merged, foldEntry{path: pe.Path, hash: [HashWidth]byte(pe.Hash)})
	}
	for _, e := range proof.Entries {
		merged = append(merged, foldEntry{
			path: leafFromArray(e.Key),
			hash: hs.leafValueHash(e.Value),
		})
	}
	sort.Slice(merged, func(i, j int) bool {
		return Compare(merged[i].path, merged[j].path) < 0
	})
	return merged
}

// contourFold reconstructs the Merkle root from a sorted mixed list of at
// least two foldEntry values using a left-to-right contour fold. The stack
// is explicit (not recursive) so a fully right-leaning proof cannot
// overflow the native call stack.
func contourFold(hs *hasher, entries []foldEntry) [HashWidth]byte {
	stack := make([]foldEntry, 0, len(entries))
	stack = append(stack, entries[0], entries[1])
	lastPrefix := CommonPrefix(entries[0].path, entries[1].path)

	for i := 2; i < len(entries); i++ {
		cur := entries[i]
		newPrefix := CommonPrefix(stack[len(stack)-1].path, cur.path)
		for len(stack) > 1 && newPrefix.NumSignificantBits() < lastPrefix.NumSignificantBits() {
			lastPrefix, stack = fold(hs, stack, lastPrefix)
		}
		stack = append(stack, cur)
		lastPrefix = newPrefix
	}
	for len(stack) > 1 {
		lastPrefix, stack = fold(hs, stack, lastPrefix)
	}
	return stack[0].hash
}

// fold pops the top two entries of stack, pushes their combined branch
// entry rooted at prefix p, and returns the common prefix at which the new
// top two entries of the stack would meet.
func fold(hs *hasher, stack []foldEntry, p Path) (Path, []foldEntry) {
	right := stack[len(stack)-1]
	left := stack[len(stack)-2]
	stack = stack[:len(stack)-2]

	combined := foldEntry{
		path: p,
		hash: hs.branchHash(left.hash, right.hash, left.path, right.path),
	}
	stack = append(stack, combined)

	if len(stack) > 1 {
		return CommonPrefix(stack[len(stack)-2].path, p), stack
	}
	return p, stack
}
