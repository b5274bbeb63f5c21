package topics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// termMatrix is a TF-IDF weighted document-term matrix over a fixed,
// alphabetically ordered feature set of unigrams and bigrams.
type termMatrix struct {
	weights  *mat.Dense
	features []string
}

// docFeatures expands a token slice into its unigram and bigram features.
func docFeatures(tokens []string) []string {
	features := make([]string, 0, 2*len(tokens))
	features = append(features, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		features = append(features, tokens[i]+" "+tokens[i+1])
	}
	return features
}

// buildTermMatrix constructs the weighted matrix for a tokenized corpus.
// Terms in fewer than minDF documents or in more than maxDFRatio of them
// are dropped, then the vocabulary is capped at maxFeatures by total
// occurrence count. Rows are L2-normalized. Returns nil when no feature
// survives filtering.
func buildTermMatrix(docs [][]string, maxFeatures, minDF int, maxDFRatio float64) *termMatrix {
	n := len(docs)
	if n == 0 {
		return nil
	}

	counts := make([]map[string]int, n)
	df := make(map[string]int)
	total := make(map[string]int)

	for i, tokens := range docs {
		counts[i] = make(map[string]int)
		for _, f := range docFeatures(tokens) {
			counts[i][f]++
		}
		for f, c := range counts[i] {
			df[f]++
			total[f] += c
		}
	}

	maxDF := int(maxDFRatio * float64(n))
	if maxDF < minDF {
		maxDF = minDF
	}

	kept := make([]string, 0, len(df))
	for f, d := range df {
		if d >= minDF && d <= maxDF {
			kept = append(kept, f)
		}
	}
	if len(kept) == 0 {
		return nil
	}

	if maxFeatures > 0 && len(kept) > maxFeatures {
		sort.Slice(kept, func(i, j int) bool {
			if total[kept[i]] != total[kept[j]] {
				return total[kept[i]] > total[kept[j]]
			}
			return kept[i] < kept[j]
		})
		kept = kept[:maxFeatures]
	}
	sort.Strings(kept)

	index := make(map[string]int, len(kept))
	for i, f := range kept {
		index[f] = i
	}

	idf := make([]float64, len(kept))
	for i, f := range kept {
		idf[i] = math.Log(float64(1+n)/float64(1+df[f])) + 1
	}

	weights := mat.NewDense(n, len(kept), nil)
	for i := range docs {
		var norm float64
		for f, c := range counts[i] {
			j, ok := index[f]
			if !ok {
				continue
			}
			w := float64(c) * idf[j]
			weights.Set(i, j, w)
			norm += w * w
		}
		if norm == 0 {
			continue
		}
		norm = math.Sqrt(norm)
		for j := range kept {
			if v := weights.At(i, j); v != 0 {
				weights.Set(i, j, v/norm)
			}
		}
	}

	return &termMatrix{weights: weights, features: kept}
}

// meanScores returns the per-feature mean weight across all documents.
func (m *termMatrix) meanScores() []float64 {
	rows, cols := m.weights.Dims()
	scores := make([]float64, cols)
	for j := 0; j < cols; j++ {
		var sum float64
		for i := 0; i < rows; i++ {
			sum += m.weights.At(i, j)
		}
		scores[j] = sum / float64(rows)
	}
	return scores
}

// bigramCounts tallies raw bigram occurrences across the corpus.
func bigramCounts(docs [][]string) map[string]int {
	counts := make(map[string]int)
	for _, tokens := range docs {
		for i := 0; i+1 < len(tokens); i++ {
			counts[tokens[i]+" "+tokens[i+1]]++
		}
	}
	return counts
}

// tokenCounts tallies raw unigram occurrences across the corpus.
func tokenCounts(docs [][]string) map[string]int {
	counts := make(map[string]int)
	for _, tokens := range docs {
		for _, t := range tokens {
			counts[t]++
		}
	}
	return counts
}
