package metrics

// PositionIndex maps a document identifier to its 1-indexed position in a
// ranked list. The first occurrence wins when an identifier repeats.
type PositionIndex map[int]int

func NewPositionIndex(ranked []int) PositionIndex {
	idx := make(PositionIndex, len(ranked))
	for i, id := range ranked {
		if _, seen := idx[id]; seen {
			continue
		}
		idx[id] = i + 1
	}
	return idx
}

// Rank returns the 1-indexed position of id, or false when it was not retrieved.
func (p PositionIndex) Rank(id int) (int, bool) {
	r, ok := p[id]
	return r, ok
}

// FoundRanks returns the rank of every expected identifier present in the index.
func (p PositionIndex) FoundRanks(expected []int) map[int]int {
	found := make(map[int]int)
	for _, id := range expected {
		if r, ok := p[id]; ok {
			found[id] = r
		}
	}
	return found
}
