package sentiment

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"

	"github.com/spacesedan/reviewpulse/config"
	"github.com/spacesedan/reviewpulse/internal/models"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]+>`)
)

// Scores is the result of scoring a single text.
type Scores struct {
	Compound float64 `json:"compound"`
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Label    string  `json:"label"`
}

// Analyzer scores review text with the VADER lexicon overlaid by the
// e-commerce domain lexicon. Scoring is a pure function of the text and
// the static lexicon, so one Analyzer can be shared across concurrent
// pipeline runs.
type Analyzer struct {
	vader   *govader.SentimentIntensityAnalyzer
	phrases []phraseToken
	cfg     config.SentimentConfig
}

// phraseToken maps a multi-word lexicon entry to the single token it is
// collapsed into before scoring.
type phraseToken struct {
	phrase string
	token  string
}

func NewAnalyzer(cfg config.SentimentConfig) *Analyzer {
	vader := govader.NewSentimentIntensityAnalyzer()

	var phrases []phraseToken
	for term, valence := range domainLexicon {
		if strings.Contains(term, " ") {
			token := strings.ReplaceAll(term, " ", "_")
			vader.Lexicon[token] = valence
			phrases = append(phrases, phraseToken{phrase: term, token: token})
			continue
		}
		vader.Lexicon[term] = valence
	}

	// Longest phrase first so "highly recommend" wins over "recommend".
	sort.Slice(phrases, func(i, j int) bool {
		if len(phrases[i].phrase) != len(phrases[j].phrase) {
			return len(phrases[i].phrase) > len(phrases[j].phrase)
		}
		return phrases[i].phrase < phrases[j].phrase
	})

	return &Analyzer{vader: vader, phrases: phrases, cfg: cfg}
}

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	return urlPattern.ReplaceAllString(input, "")
}

// PlainText renders markdown to text and strips links and HTML tags.
// Review platforms hand over lightly formatted text; scoring happens on
// the plain words.
func PlainText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	stripped := tagPattern.ReplaceAllString(string(output), " ")
	return RemoveLinks(strings.Join(strings.Fields(stripped), " "))
}

func (a *Analyzer) preprocess(text string) string {
	plain := strings.ToLower(PlainText(text))
	for _, p := range a.phrases {
		plain = strings.ReplaceAll(plain, p.phrase, p.token)
	}
	return plain
}

// Score scores a single text. Empty or whitespace-only text scores
// zero/neutral deterministically.
func (a *Analyzer) Score(text string) Scores {
	if strings.TrimSpace(text) == "" {
		return Scores{Label: models.LabelNeutral}
	}

	sentiment := a.vader.PolarityScores(a.preprocess(text))

	return Scores{
		Compound: sentiment.Compound,
		Positive: sentiment.Positive,
		Negative: sentiment.Negative,
		Neutral:  sentiment.Neutral,
		Label:    a.label(sentiment.Compound),
	}
}

func (a *Analyzer) label(compound float64) string {
	switch {
	case compound >= a.cfg.PositiveThreshold:
		return models.LabelPositive
	case compound <= a.cfg.NegativeThreshold:
		return models.LabelNegative
	default:
		return models.LabelNeutral
	}
}

// AnalyzeCorpus scores every review independently and in input order.
// Reviews without usable text are skipped and counted rather than
// failing the batch.
func (a *Analyzer) AnalyzeCorpus(reviews []models.Review) ([]models.ScoredReview, int) {
	scored := make([]models.ScoredReview, 0, len(reviews))
	skipped := 0

	for _, review := range reviews {
		if strings.TrimSpace(review.Text) == "" {
			skipped++
			continue
		}

		s := a.Score(review.Text)
		scored = append(scored, models.ScoredReview{
			Review:   review,
			Compound: s.Compound,
			Positive: s.Positive,
			Negative: s.Negative,
			Neutral:  s.Neutral,
			Label:    s.Label,
		})
	}

	return scored, skipped
}
