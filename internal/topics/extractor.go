package topics

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/spacesedan/reviewpulse/config"
	"github.com/spacesedan/reviewpulse/internal/models"
)

// Extractor discovers keywords, bigrams, word frequencies and latent
// topic clusters from a review corpus. Stateless between calls; one
// Extractor may serve concurrent runs.
type Extractor struct {
	cfg config.TopicsConfig
}

func NewExtractor(cfg config.TopicsConfig) *Extractor {
	return &Extractor{cfg: cfg}
}

// Results holds the corpus-level topic output. Every field is rebuilt
// from scratch on each run.
type Results struct {
	Keywords        []models.Keyword
	Bigrams         []models.Bigram
	Clusters        []models.TopicCluster
	WordFrequencies []models.WordCount
}

func emptyResults() Results {
	return Results{
		Keywords:        []models.Keyword{},
		Bigrams:         []models.Bigram{},
		Clusters:        []models.TopicCluster{},
		WordFrequencies: []models.WordCount{},
	}
}

// Extract runs the topic stage over raw review texts. Corpora below the
// configured minimum return empty structures; TF-IDF and NMF are
// statistically meaningless on a handful of documents.
func (e *Extractor) Extract(corpus []string) Results {
	results := emptyResults()

	docs := make([][]string, 0, len(corpus))
	for _, text := range corpus {
		if tokens := Tokenize(text); len(tokens) > 0 {
			docs = append(docs, tokens)
		}
	}

	if len(docs) < e.cfg.MinCorpusSize {
		slog.Debug("[TopicExtractor] Corpus below minimum size, skipping",
			slog.Int("documents", len(docs)),
			slog.Int("minimum", e.cfg.MinCorpusSize))
		return results
	}

	results.WordFrequencies = topCounts(tokenCounts(docs), e.cfg.TopWords, func(w string, c int) models.WordCount {
		return models.WordCount{Word: w, Count: c}
	})
	results.Bigrams = topCounts(bigramCounts(docs), e.cfg.TopBigrams, func(p string, c int) models.Bigram {
		return models.Bigram{Phrase: p, Count: c}
	})

	matrix := buildTermMatrix(docs, e.cfg.MaxFeatures, e.cfg.MinDocFreq, e.cfg.MaxDocFreqRatio)
	if matrix == nil {
		return results
	}

	results.Keywords = e.rankKeywords(matrix)
	results.Clusters = e.cluster(matrix, len(docs))
	return results
}

func (e *Extractor) rankKeywords(matrix *termMatrix) []models.Keyword {
	scores := matrix.meanScores()
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		if scores[order[a]] != scores[order[b]] {
			return scores[order[a]] > scores[order[b]]
		}
		return matrix.features[order[a]] < matrix.features[order[b]]
	})

	limit := e.cfg.TopKeywords
	if limit > len(order) {
		limit = len(order)
	}

	keywords := make([]models.Keyword, 0, limit)
	for _, j := range order[:limit] {
		keywords = append(keywords, models.Keyword{
			Keyword: matrix.features[j],
			Score:   round4(scores[j]),
		})
	}
	return keywords
}

// cluster factors the weighted matrix into latent topics and assigns
// each document to its strongest component. Falls back to no clusters
// when the factorization does not converge in budget.
func (e *Extractor) cluster(matrix *termMatrix, nDocs int) []models.TopicCluster {
	k := e.cfg.NumTopics
	if k > nDocs {
		k = nDocs
	}
	if k > len(matrix.features) {
		k = len(matrix.features)
	}
	if k < 2 {
		return []models.TopicCluster{}
	}

	w, h, ok := factorize(matrix.weights, k, e.cfg.MaxIterations, e.cfg.Tolerance, e.cfg.Seed)
	if !ok {
		slog.Warn("[TopicExtractor] NMF did not converge, returning no clusters",
			slog.Int("max_iterations", e.cfg.MaxIterations))
		return []models.TopicCluster{}
	}

	docCounts := make([]int, k)
	for i := 0; i < nDocs; i++ {
		best, bestWeight := 0, math.Inf(-1)
		for j := 0; j < k; j++ {
			if weight := w.At(i, j); weight > bestWeight {
				best, bestWeight = j, weight
			}
		}
		docCounts[best]++
	}

	clusters := make([]models.TopicCluster, 0, k)
	for topic := 0; topic < k; topic++ {
		order := make([]int, len(matrix.features))
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool {
			wa, wb := h.At(topic, order[a]), h.At(topic, order[b])
			if wa != wb {
				return wa > wb
			}
			return matrix.features[order[a]] < matrix.features[order[b]]
		})

		limit := e.cfg.WordsPerTopic
		if limit > len(order) {
			limit = len(order)
		}
		words := make([]string, 0, limit)
		for _, j := range order[:limit] {
			words = append(words, matrix.features[j])
		}

		clusters = append(clusters, models.TopicCluster{
			Name:          fmt.Sprintf("Topic %d", topic+1),
			Words:         words,
			DocumentCount: docCounts[topic],
		})
	}
	return clusters
}

// topCounts ranks a count map by count descending with lexicographic
// tie-breaking and converts the top n entries.
func topCounts[T any](counts map[string]int, n int, convert func(string, int) T) []T {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	if n > len(keys) {
		n = len(keys)
	}
	out := make([]T, 0, n)
	for _, k := range keys[:n] {
		out = append(out, convert(k, counts[k]))
	}
	return out
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
