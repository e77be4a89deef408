package bm25

import (
	"math"
	"sort"
	"strings"
	"sync"
	"unicode"
)

const (
	k1 = 1.2
	b  = 0.75
)

type posting struct {
	docID int
	count int
}

type scored struct {
	docID int
	score float64
}

// Index is an in-memory Okapi BM25 inverted index keyed by integer document IDs.
type Index struct {
	mu          sync.RWMutex
	inverted    map[string][]posting
	docLengths  map[int]int
	totalLength int64
}

func NewIndex() *Index {
	return &Index{
		inverted:   make(map[string][]posting),
		docLengths: make(map[int]int),
	}
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Add indexes text under docID, replacing any previous content for it.
func (idx *Index) Add(docID int, text string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if _, ok := idx.docLengths[docID]; ok {
		idx.deleteLocked(docID)
	}

	tokens := tokenize(text)
	idx.docLengths[docID] = len(tokens)
	idx.totalLength += int64(len(tokens))

	tf := make(map[string]int)
	for _, t := range tokens {
		tf[t]++
	}
	for t, count := range tf {
		idx.inverted[t] = append(idx.inverted[t], posting{docID: docID, count: count})
	}
}

func (idx *Index) deleteLocked(docID int) {
	for t, postings := range idx.inverted {
		for i, p := range postings {
			if p.docID == docID {
				idx.inverted[t] = append(postings[:i], postings[i+1:]...)
				break
			}
		}
		if len(idx.inverted[t]) == 0 {
			delete(idx.inverted, t)
		}
	}
	idx.totalLength -= int64(idx.docLengths[docID])
	delete(idx.docLengths, docID)
}

func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.docLengths)
}

// Search scores every document sharing a term with text and returns the top k,
// ordered by score descending and document ID ascending on ties.
func (idx *Index) Search(text string, k int) []scored {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	docCount := len(idx.docLengths)
	if docCount == 0 || k <= 0 {
		return nil
	}
	avgDL := float64(idx.totalLength) / float64(docCount)

	scores := make(map[int]float64)
	for _, t := range tokenize(text) {
		postings, ok := idx.inverted[t]
		if !ok {
			continue
		}
		idf := computeIDF(docCount, len(postings))
		for _, p := range postings {
			tf := float64(p.count)
			docLen := float64(idx.docLengths[p.docID])
			num := tf * (k1 + 1)
			denom := tf + k1*(1-b+b*(docLen/avgDL))
			scores[p.docID] += idf * (num / denom)
		}
	}

	results := make([]scored, 0, len(scores))
	for id, s := range scores {
		results = append(results, scored{docID: id, score: s})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		return results[i].docID < results[j].docID
	})
	if len(results) > k {
		results = results[:k]
	}
	return results
}

func computeIDF(docCount, df int) float64 {
	n := float64(docCount)
	d := float64(df)
	return math.Log(1 + (n-d+0.5)/(d+0.5))
}
