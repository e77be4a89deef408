package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPositionIndex(t *testing.T) {
	idx := NewPositionIndex([]int{7, 42, 5, 42})

	r, ok := idx.Rank(42)
	assert.True(t, ok)
	assert.Equal(t, 2, r, "first occurrence wins")

	r, ok = idx.Rank(5)
	assert.True(t, ok)
	assert.Equal(t, 3, r)

	_, ok = idx.Rank(99)
	assert.False(t, ok)
}

func TestPositionIndex_FoundRanks(t *testing.T) {
	idx := NewPositionIndex([]int{7, 42, 5})
	found := idx.FoundRanks([]int{5, 42, 100})
	assert.Equal(t, map[int]int{5: 3, 42: 2}, found)
}

func TestBestRank(t *testing.T) {
	_, ok := BestRank(nil)
	assert.False(t, ok)

	best, ok := BestRank(map[int]int{5: 3, 42: 2})
	assert.True(t, ok)
	assert.Equal(t, 2, best)
}

func TestComputeAll_RecallAtK(t *testing.T) {
	tests := []struct {
		name     string
		ranked   []int
		expected []int
		k        int
		want     float64
	}{
		{name: "empty ranked list", ranked: nil, expected: []int{1}, k: 5, want: 0},
		{name: "hit at top", ranked: []int{42, 7, 9}, expected: []int{42}, k: 1, want: 1},
		{name: "hit below k", ranked: []int{7, 9, 42}, expected: []int{42}, k: 2, want: 0},
		{name: "hit at k", ranked: []int{7, 9, 42}, expected: []int{42}, k: 3, want: 1},
		{name: "k beyond list", ranked: []int{7, 42}, expected: []int{42}, k: 10, want: 1},
		{name: "any of several", ranked: []int{7, 42, 5}, expected: []int{5, 42}, k: 2, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ComputeAll(tt.ranked, tt.expected, []int{tt.k})
			assert.InDelta(t, tt.want, s.Recall[tt.k], 1e-9)
		})
	}
}

func TestComputeAll_ReciprocalRank(t *testing.T) {
	tests := []struct {
		name     string
		ranked   []int
		expected []int
		want     float64
	}{
		{name: "not retrieved", ranked: []int{7, 9, 11}, expected: []int{42}, want: 0},
		{name: "first is relevant", ranked: []int{42, 7, 9}, expected: []int{42}, want: 1},
		{name: "best of several wins", ranked: []int{7, 42, 5}, expected: []int{5, 42}, want: 0.5},
		{name: "third is first relevant", ranked: []int{1, 2, 3, 4}, expected: []int{4, 3}, want: 1.0 / 3.0},
		{name: "duplicate keeps first position", ranked: []int{7, 42, 42}, expected: []int{42}, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ComputeAll(tt.ranked, tt.expected, DefaultKValues)
			assert.InDelta(t, tt.want, s.ReciprocalRank, 1e-9)
			assert.Equal(t, tt.want > 0, s.Found)
		})
	}
}

func TestNormalizeKValues(t *testing.T) {
	assert.Equal(t, []int{1, 3, 5, 10}, NormalizeKValues())
	assert.Equal(t, []int{1, 3, 5, 10, 20}, NormalizeKValues(20, 10, 0, -1))
	assert.Equal(t, []int{1, 2, 3, 5, 10}, NormalizeKValues(2))
}

func TestComputeAll(t *testing.T) {
	kValues := NormalizeKValues()

	t.Run("found at top", func(t *testing.T) {
		s := ComputeAll([]int{42, 7, 9}, []int{42}, kValues)
		assert.True(t, s.Found)
		assert.Equal(t, 1, s.BestRank)
		assert.InDelta(t, 1.0, s.ReciprocalRank, 1e-9)
		for _, k := range kValues {
			assert.InDelta(t, 1.0, s.Recall[k], 1e-9)
		}
	})

	t.Run("not found", func(t *testing.T) {
		s := ComputeAll([]int{7, 9, 11}, []int{42}, kValues)
		assert.False(t, s.Found)
		assert.Empty(t, s.FoundRanks)
		assert.Zero(t, s.ReciprocalRank)
		for _, k := range kValues {
			assert.Zero(t, s.Recall[k])
		}
	})

	t.Run("recall is monotonic in k", func(t *testing.T) {
		ranked := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
		for target := 1; target <= 10; target++ {
			s := ComputeAll(ranked, []int{target}, kValues)
			prev := 0.0
			for _, k := range kValues {
				assert.GreaterOrEqual(t, s.Recall[k], prev)
				prev = s.Recall[k]
			}
			assert.InDelta(t, 1.0/float64(target), s.ReciprocalRank, 1e-9)
		}
	})
}
