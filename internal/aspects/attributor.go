package aspects

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/spacesedan/reviewpulse/config"
	"github.com/spacesedan/reviewpulse/internal/models"
)

// Attributor matches reviews against an aspect vocabulary and
// attributes each review's overall sentiment to the aspects it
// mentions. It does not re-score aspect-local sub-text; the
// review-level compound stands in for aspect sentiment.
type Attributor struct {
	cfg config.AspectsConfig
}

func NewAttributor(cfg config.AspectsConfig) *Attributor {
	return &Attributor{cfg: cfg}
}

// Results carries the aggregate aspect view plus the tagged review
// copies the driver engine consumes.
type Results struct {
	Tagged     []models.ScoredReview
	Summaries  []models.AspectSummary
	PainPoints []models.PainPoint
	// Matches maps aspect keys to indices into Tagged.
	Matches map[string][]int
}

type aspectStats struct {
	def      Definition
	indices  []int
	sum      float64
	positive int
	negative int
	neutral  int
}

// Attribute scans every scored review for aspect trigger terms and
// aggregates per-aspect statistics. Aspects that match no review are
// omitted from the output entirely.
func (a *Attributor) Attribute(scored []models.ScoredReview, defs []Definition) Results {
	matchers := make([]triggerMatcher, len(defs))
	for i, def := range defs {
		matchers[i] = newTriggerMatcher(def)
	}

	stats := make([]*aspectStats, len(defs))
	for i, def := range defs {
		stats[i] = &aspectStats{def: def}
	}

	tagged := make([]models.ScoredReview, len(scored))
	copy(tagged, scored)

	for idx := range tagged {
		lowered := strings.ToLower(tagged[idx].Text)
		tokens := tokenSet(lowered)

		for i := range matchers {
			if !matchers[i].matches(lowered, tokens) {
				continue
			}

			st := stats[i]
			st.indices = append(st.indices, idx)
			st.sum += tagged[idx].Compound
			switch tagged[idx].Label {
			case models.LabelPositive:
				st.positive++
			case models.LabelNegative:
				st.negative++
			default:
				st.neutral++
			}

			if tagged[idx].AspectSentiments == nil {
				tagged[idx].AspectSentiments = make(map[string]float64)
			}
			tagged[idx].AspectSentiments[st.def.Key] = tagged[idx].Compound
		}
	}

	results := Results{
		Tagged:     tagged,
		Summaries:  []models.AspectSummary{},
		PainPoints: []models.PainPoint{},
		Matches:    make(map[string][]int),
	}

	for _, st := range stats {
		mentions := len(st.indices)
		if mentions == 0 {
			continue
		}

		total := float64(mentions)
		results.Matches[st.def.Key] = st.indices
		results.Summaries = append(results.Summaries, models.AspectSummary{
			Aspect:        st.def.Label,
			AspectKey:     st.def.Key,
			Mentions:      mentions,
			AvgSentiment:  round3(st.sum / total),
			PositiveCount: st.positive,
			NegativeCount: st.negative,
			NeutralCount:  st.neutral,
			PositivePct:   round1(float64(st.positive) / total * 100),
			NegativePct:   round1(float64(st.negative) / total * 100),
		})

		if pp, ok := a.painPoint(st, tagged); ok {
			results.PainPoints = append(results.PainPoints, pp)
		}
	}

	sort.SliceStable(results.Summaries, func(i, j int) bool {
		if results.Summaries[i].Mentions != results.Summaries[j].Mentions {
			return results.Summaries[i].Mentions > results.Summaries[j].Mentions
		}
		return results.Summaries[i].AspectKey < results.Summaries[j].AspectKey
	})

	sort.SliceStable(results.PainPoints, func(i, j int) bool {
		if results.PainPoints[i].NegativeMentions != results.PainPoints[j].NegativeMentions {
			return results.PainPoints[i].NegativeMentions > results.PainPoints[j].NegativeMentions
		}
		return results.PainPoints[i].AspectKey < results.PainPoints[j].AspectKey
	})
	if len(results.PainPoints) > a.cfg.MaxPainPoints {
		results.PainPoints = results.PainPoints[:a.cfg.MaxPainPoints]
	}

	return results
}

// painPoint qualifies an aspect when negative mentions cross both the
// absolute and the relative thresholds. Examples come from the most
// negative matching reviews.
func (a *Attributor) painPoint(st *aspectStats, tagged []models.ScoredReview) (models.PainPoint, bool) {
	mentions := len(st.indices)
	negPct := float64(st.negative) / float64(mentions) * 100
	if st.negative < a.cfg.MinPainPointMentions || negPct <= a.cfg.PainPointNegativePct {
		return models.PainPoint{}, false
	}

	indices := make([]int, len(st.indices))
	copy(indices, st.indices)
	sort.SliceStable(indices, func(i, j int) bool {
		return tagged[indices[i]].Compound < tagged[indices[j]].Compound
	})

	var negSum float64
	negCount := 0
	examples := []string{}
	for _, idx := range indices {
		r := tagged[idx]
		if r.Label != models.LabelNegative {
			continue
		}
		negSum += r.Compound
		negCount++
		if len(examples) < a.cfg.MaxPainPointExamples {
			examples = append(examples, r.Text)
		}
	}

	return models.PainPoint{
		Aspect:           st.def.Label,
		AspectKey:        st.def.Key,
		NegativeMentions: st.negative,
		AvgNegativeScore: round3(negSum / float64(negCount)),
		Examples:         examples,
	}, true
}

// triggerMatcher splits an aspect's triggers into single tokens
// (matched against the review's token set) and phrases (matched as
// substrings of the lowered text).
type triggerMatcher struct {
	tokens  []string
	phrases []string
}

func newTriggerMatcher(def Definition) triggerMatcher {
	var m triggerMatcher
	for _, trigger := range def.Triggers {
		t := strings.ToLower(trigger)
		if strings.ContainsFunc(t, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) }) {
			m.phrases = append(m.phrases, t)
		} else {
			m.tokens = append(m.tokens, t)
		}
	}
	return m
}

func (m triggerMatcher) matches(lowered string, tokens map[string]struct{}) bool {
	for _, t := range m.tokens {
		if _, ok := tokens[t]; ok {
			return true
		}
	}
	for _, p := range m.phrases {
		if strings.Contains(lowered, p) {
			return true
		}
	}
	return false
}

// tokenSet splits lowered text into alphanumeric tokens.
func tokenSet(lowered string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		set[tok] = struct{}{}
	}
	return set
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
