package models

// AnalysisReport is the full pipeline output consumed by the dashboard
// and caching layers. All slices are deterministically ordered so that
// identical input always serializes to identical JSON.
type AnalysisReport struct {
	ReviewCount      int               `json:"review_count"`
	SkippedReviews   int               `json:"skipped_reviews"`
	Industry         string            `json:"industry"`
	Summary          ExecutiveSummary  `json:"summary"`
	Overview         Overview          `json:"overview"`
	NPS              NPSMetrics        `json:"nps"`
	Topics           TopicSummary      `json:"topics"`
	Aspects          []AspectSummary   `json:"aspects"`
	PainPoints       []PainPoint       `json:"pain_points"`
	KeyDrivers       []KeyDriver       `json:"key_drivers"`
	Trends           *TrendSeries      `json:"trends,omitempty"`
	AspectTrends     []AspectTrend     `json:"aspect_trends"`
	PeriodComparison *PeriodComparison `json:"period_comparison,omitempty"`
	Anomalies        []Anomaly         `json:"anomalies"`
	Segments         Segments          `json:"segments"`
	Alerts           []Alert           `json:"alerts"`
	SampleReviews    SampleReviews     `json:"sample_reviews"`
}

// ExecutiveSummary restates the headline numbers in one place for
// dashboard cards. RecentTrend covers the most recent timestamped
// reviews; nil when nothing carries a timestamp.
type ExecutiveSummary struct {
	TotalReviews      int          `json:"total_reviews"`
	AvgSentiment      float64      `json:"avg_sentiment"`
	NPSProxy          float64      `json:"nps_proxy"`
	RatingCorrelation *float64     `json:"rating_correlation,omitempty"`
	RecentTrend       *RecentTrend `json:"recent_trend,omitempty"`
}

type RecentTrend struct {
	ReviewCount  int     `json:"review_count"`
	AvgSentiment float64 `json:"avg_sentiment"`
	PositivePct  float64 `json:"positive_pct"`
}

// Overview summarizes corpus-level sentiment distribution.
type Overview struct {
	AvgSentiment float64        `json:"avg_sentiment"`
	Counts       map[string]int `json:"distribution"`
	PositivePct  float64        `json:"positive_pct"`
	NegativePct  float64        `json:"negative_pct"`
	NeutralPct   float64        `json:"neutral_pct"`
}

// NPSMetrics is the sentiment-derived Net Promoter Score proxy.
type NPSMetrics struct {
	NPSProxy      float64 `json:"nps_proxy"`
	Promoters     int     `json:"promoters"`
	PromotersPct  float64 `json:"promoters_pct"`
	Passives      int     `json:"passives"`
	PassivesPct   float64 `json:"passives_pct"`
	Detractors    int     `json:"detractors"`
	DetractorsPct float64 `json:"detractors_pct"`
	Total         int     `json:"total"`
}

type Keyword struct {
	Keyword string  `json:"keyword"`
	Score   float64 `json:"score"`
}

type Bigram struct {
	Phrase string `json:"phrase"`
	Count  int    `json:"count"`
}

type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// TopicCluster is one latent topic discovered by factorizing the
// weighted term matrix. Rebuilt on every run, never persisted.
type TopicCluster struct {
	Name          string   `json:"name"`
	Words         []string `json:"words"`
	DocumentCount int      `json:"document_count"`
}

type TopicSummary struct {
	Keywords        []Keyword      `json:"keywords"`
	Bigrams         []Bigram       `json:"bigrams"`
	Clusters        []TopicCluster `json:"clusters"`
	WordFrequencies []WordCount    `json:"word_frequencies"`
}

// AspectSummary aggregates review-level sentiment attributed to one
// aspect. Aspects with zero mentions are never emitted.
type AspectSummary struct {
	Aspect        string  `json:"aspect"`
	AspectKey     string  `json:"aspect_key"`
	Mentions      int     `json:"mentions"`
	AvgSentiment  float64 `json:"avg_sentiment"`
	PositiveCount int     `json:"positive_count"`
	NegativeCount int     `json:"negative_count"`
	NeutralCount  int     `json:"neutral_count"`
	PositivePct   float64 `json:"positive_pct"`
	NegativePct   float64 `json:"negative_pct"`
}

type PainPoint struct {
	Aspect           string   `json:"aspect"`
	AspectKey        string   `json:"aspect_key"`
	NegativeMentions int      `json:"negative_mentions"`
	AvgNegativeScore float64  `json:"avg_negative_score"`
	Examples         []string `json:"examples"`
}

// Key-driver priority quadrants.
const (
	PriorityFixNow       = "fix_now"
	PriorityMaintain     = "maintain"
	PriorityMonitor      = "monitor"
	PriorityDeprioritize = "deprioritize"
)

type KeyDriver struct {
	Aspect       string  `json:"aspect"`
	AvgSentiment float64 `json:"avg_sentiment"`
	MentionCount int     `json:"mention_count"`
	ImpactScore  float64 `json:"impact_score"`
	Priority     string  `json:"priority"`
}

// TrendSeries holds parallel arrays, one entry per time bucket,
// ordered chronologically. Empty buckets keep their slot with zero
// volume and a null sentiment so gaps stay visible.
type TrendSeries struct {
	Periods   []string   `json:"periods"`
	Sentiment []*float64 `json:"sentiment"`
	MovingAvg []*float64 `json:"moving_avg"`
	Volume    []int      `json:"volume"`
}

// AspectTrend is one aspect's attributed sentiment within one time
// bucket, using the same bucketing as TrendSeries.
type AspectTrend struct {
	Period       string  `json:"period"`
	AspectKey    string  `json:"aspect_key"`
	AvgSentiment float64 `json:"avg_sentiment"`
	MentionCount int     `json:"mention_count"`
}

// Period-over-period trend directions.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// PeriodWindow summarizes one side of a period comparison.
type PeriodWindow struct {
	Start        string  `json:"start"`
	End          string  `json:"end"`
	ReviewCount  int     `json:"review_count"`
	AvgSentiment float64 `json:"avg_sentiment"`
	PositivePct  float64 `json:"positive_pct"`
}

type PeriodChanges struct {
	SentimentChange    float64 `json:"sentiment_change"`
	SentimentChangePct float64 `json:"sentiment_change_pct"`
	PositivePctChange  float64 `json:"positive_pct_change"`
	Trend              string  `json:"trend"`
}

type PeriodComparison struct {
	Previous PeriodWindow  `json:"previous"`
	Current  PeriodWindow  `json:"current"`
	Changes  PeriodChanges `json:"changes"`
}

// Anomaly types flagged by z-score detection.
const (
	AnomalyPositiveSpike = "positive_spike"
	AnomalyNegativeSpike = "negative_spike"
)

type Anomaly struct {
	Period string  `json:"period"`
	Type   string  `json:"type"`
	ZScore float64 `json:"z_score"`
}

type RatingSegment struct {
	Rating       float64 `json:"rating"`
	Count        int     `json:"count"`
	AvgSentiment float64 `json:"avg_sentiment"`
	PositivePct  float64 `json:"positive_pct"`
	NegativePct  float64 `json:"negative_pct"`
}

type CategorySegment struct {
	Category     string  `json:"category"`
	Count        int     `json:"count"`
	AvgSentiment float64 `json:"avg_sentiment"`
	PositivePct  float64 `json:"positive_pct"`
}

type Segments struct {
	Ratings           []RatingSegment   `json:"ratings,omitempty"`
	Categories        []CategorySegment `json:"categories,omitempty"`
	RatingCorrelation *float64          `json:"rating_correlation,omitempty"`
}

// Alert severities.
const (
	AlertCritical = "critical"
	AlertWarning  = "warning"
)

type Alert struct {
	Severity string  `json:"severity"`
	Metric   string  `json:"metric"`
	Message  string  `json:"message"`
	Value    float64 `json:"value"`
}

type SampleReview struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

type SampleReviews struct {
	Positive []SampleReview `json:"positive"`
	Negative []SampleReview `json:"negative"`
}
