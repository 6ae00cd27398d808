// internal/domain/imagesync/reconcile.go
package imagesync

// Reconcile cancels out redundant delete+add pairs between a locally-desired
// addition list and a locally-marked deletion list, both keyed by image name.
//
// For each name present in both lists, min(deleteCount, addCount) occurrences
// are removed from both sides: an image deleted and re-added under the same
// name converges to a no-op. Matching is by name only, never content, so a
// re-upload with changed bytes under an unchanged name is also cancelled.
//
// Remaining entries keep their multiset counts; relative order within each
// list follows first appearance in the input.
func Reconcile(adds, deletes []string) (addsOut, deletesOut []string) {
	deleteCount := map[string]int{}
	for _, name := range deletes {
		deleteCount[name]++
	}
	addCount := map[string]int{}
	for _, name := range adds {
		addCount[name]++
	}

	for name, dc := range deleteCount {
		ac, ok := addCount[name]
		if !ok {
			continue
		}
		cancel := dc
		if ac < cancel {
			cancel = ac
		}
		deleteCount[name] -= cancel
		addCount[name] -= cancel
	}

	deletesOut = rebuild(deletes, deleteCount)
	addsOut = rebuild(adds, addCount)
	return addsOut, deletesOut
}

// rebuild emits up to remaining[name] occurrences of each name, preserving the
// input's order of first appearance.
func rebuild(input []string, remaining map[string]int) []string {
	out := make([]string, 0, len(input))
	for _, name := range input {
		if remaining[name] <= 0 {
			continue
		}
		remaining[name]--
		out = append(out, name)
	}
	return out
}
