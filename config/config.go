package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "REVIEWPULSE"

// Config carries every tunable threshold the pipeline uses. Values are
// bound from the environment with envconfig; unset variables fall back
// to the struct-tag defaults. A Config is read-only once built and may
// be shared across concurrent pipeline runs.
type Config struct {
	Sentiment SentimentConfig
	Topics    TopicsConfig
	Aspects   AspectsConfig
	Trends    TrendsConfig
}

type SentimentConfig struct {
	// Compound thresholds for the positive/negative labels.
	PositiveThreshold float64 `envconfig:"POSITIVE_THRESHOLD" default:"0.05"`
	NegativeThreshold float64 `envconfig:"NEGATIVE_THRESHOLD" default:"-0.05"`
	// Compound magnitude above which a review counts as an extreme sample.
	ExtremeThreshold float64 `envconfig:"EXTREME_THRESHOLD" default:"0.7"`
	SampleCount      int     `envconfig:"SAMPLE_COUNT" default:"3"`
}

type TopicsConfig struct {
	TopKeywords   int     `envconfig:"TOP_KEYWORDS" default:"20"`
	TopBigrams    int     `envconfig:"TOP_BIGRAMS" default:"15"`
	TopWords      int     `envconfig:"TOP_WORDS" default:"50"`
	NumTopics     int     `envconfig:"NUM_TOPICS" default:"6"`
	WordsPerTopic int     `envconfig:"WORDS_PER_TOPIC" default:"10"`
	MinCorpusSize int     `envconfig:"MIN_CORPUS_SIZE" default:"5"`
	// Document-frequency bounds for the vectorizer: terms in fewer than
	// MinDocFreq documents or in more than MaxDocFreqRatio of them are
	// dropped.
	MinDocFreq      int     `envconfig:"MIN_DOC_FREQ" default:"2"`
	MaxDocFreqRatio float64 `envconfig:"MAX_DOC_FREQ_RATIO" default:"0.95"`
	MaxFeatures     int     `envconfig:"MAX_FEATURES" default:"1000"`
	MaxIterations   int     `envconfig:"MAX_ITERATIONS" default:"200"`
	Tolerance       float64 `envconfig:"TOLERANCE" default:"0.0001"`
	// Seed for NMF initialization. Fixed so repeated runs on identical
	// input produce identical cluster assignments.
	Seed int64 `envconfig:"SEED" default:"42"`
}

type AspectsConfig struct {
	// An aspect becomes a pain point when both thresholds are crossed.
	MinPainPointMentions int     `envconfig:"MIN_PAIN_POINT_MENTIONS" default:"5"`
	PainPointNegativePct float64 `envconfig:"PAIN_POINT_NEGATIVE_PCT" default:"30"`
	MaxPainPointExamples int     `envconfig:"MAX_PAIN_POINT_EXAMPLES" default:"3"`
	MaxPainPoints        int     `envconfig:"MAX_PAIN_POINTS" default:"5"`
}

type TrendsConfig struct {
	// Bucket width: "day", "week" or "month".
	Granularity      string  `envconfig:"GRANULARITY" default:"day"`
	MovingWindow     int     `envconfig:"MOVING_WINDOW" default:"3"`
	AnomalyThreshold float64 `envconfig:"ANOMALY_THRESHOLD" default:"2.0"`
	// Minimum mentions before an aspect is considered as a key driver.
	MinDriverMentions int `envconfig:"MIN_DRIVER_MENTIONS" default:"5"`
	// Impact split for the priority quadrant. Negative means "use the
	// median impact across drivers".
	ImpactSplit        float64 `envconfig:"IMPACT_SPLIT" default:"-1"`
	SentimentSplit     float64 `envconfig:"SENTIMENT_SPLIT" default:"0"`
	PromoterThreshold  float64 `envconfig:"PROMOTER_THRESHOLD" default:"0.5"`
	DetractorThreshold float64 `envconfig:"DETRACTOR_THRESHOLD" default:"-0.3"`
	SentimentDropAlert float64 `envconfig:"SENTIMENT_DROP_ALERT" default:"0.15"`
	// Most recent reviews considered for the executive summary trend.
	RecentWindow int `envconfig:"RECENT_WINDOW" default:"100"`
	// Sentiment delta beyond which a period comparison reads as
	// improving or declining instead of stable.
	TrendChangeThreshold float64 `envconfig:"TREND_CHANGE_THRESHOLD" default:"0.05"`
}

// Load binds the pipeline configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("processing %s env config: %w", envPrefix, err)
	}
	return cfg, nil
}

// Default returns the built-in tuning without consulting the environment.
func Default() Config {
	return Config{
		Sentiment: SentimentConfig{
			PositiveThreshold: 0.05,
			NegativeThreshold: -0.05,
			ExtremeThreshold:  0.7,
			SampleCount:       3,
		},
		Topics: TopicsConfig{
			TopKeywords:     20,
			TopBigrams:      15,
			TopWords:        50,
			NumTopics:       6,
			WordsPerTopic:   10,
			MinCorpusSize:   5,
			MinDocFreq:      2,
			MaxDocFreqRatio: 0.95,
			MaxFeatures:     1000,
			MaxIterations:   200,
			Tolerance:       0.0001,
			Seed:            42,
		},
		Aspects: AspectsConfig{
			MinPainPointMentions: 5,
			PainPointNegativePct: 30,
			MaxPainPointExamples: 3,
			MaxPainPoints:        5,
		},
		Trends: TrendsConfig{
			Granularity:          "day",
			MovingWindow:         3,
			AnomalyThreshold:     2.0,
			MinDriverMentions:    5,
			ImpactSplit:          -1,
			SentimentSplit:       0,
			PromoterThreshold:    0.5,
			DetractorThreshold:   -0.3,
			SentimentDropAlert:   0.15,
			RecentWindow:         100,
			TrendChangeThreshold: 0.05,
		},
	}
}
