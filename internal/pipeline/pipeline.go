package pipeline

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spacesedan/reviewpulse/config"
	"github.com/spacesedan/reviewpulse/internal/aspects"
	"github.com/spacesedan/reviewpulse/internal/models"
	"github.com/spacesedan/reviewpulse/internal/sentiment"
	"github.com/spacesedan/reviewpulse/internal/topics"
	"github.com/spacesedan/reviewpulse/internal/trends"
)

// Pipeline sequences scorer -> {topic extractor, aspect attributor} ->
// trend/driver engine over an in-memory review batch. It holds only
// read-only configuration and lexicons, so a single Pipeline serves any
// number of concurrent RunFullAnalysis calls.
type Pipeline struct {
	cfg        config.Config
	analyzer   *sentiment.Analyzer
	extractor  *topics.Extractor
	attributor *aspects.Attributor
	engine     *trends.Engine
}

func New(cfg config.Config) *Pipeline {
	return &Pipeline{
		cfg:        cfg,
		analyzer:   sentiment.NewAnalyzer(cfg.Sentiment),
		extractor:  topics.NewExtractor(cfg.Topics),
		attributor: aspects.NewAttributor(cfg.Aspects),
		engine:     trends.NewEngine(cfg.Trends),
	}
}

// RunFullAnalysis produces a complete report for one review batch.
// Configuration problems (unknown industry, empty aspect vocabulary)
// fail before any review is touched; degenerate data conditions never
// error, they degrade to empty sections. Identical input and
// configuration always yields an identical report.
func (p *Pipeline) RunFullAnalysis(reviews []models.Review, industry aspects.Industry) (*models.AnalysisReport, error) {
	defs, err := aspects.ForIndustry(industry)
	if err != nil {
		return nil, fmt.Errorf("resolving aspect config: %w", err)
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("industry %q has an empty aspect vocabulary", industry)
	}

	start := time.Now()
	slog.Info("[Pipeline] Starting full analysis",
		slog.Int("reviews", len(reviews)),
		slog.String("industry", string(industry)))

	scored, skipped := p.analyzer.AnalyzeCorpus(reviews)

	report := &models.AnalysisReport{
		ReviewCount:    len(scored),
		SkippedReviews: skipped,
		Industry:       string(industry),
		Overview:       sentiment.Distribution(scored),
		NPS:            p.engine.ComputeNPSProxy(scored),
	}

	texts := make([]string, len(scored))
	for i, r := range scored {
		texts[i] = r.Text
	}
	topicResults := p.extractor.Extract(texts)
	report.Topics = models.TopicSummary{
		Keywords:        topicResults.Keywords,
		Bigrams:         topicResults.Bigrams,
		Clusters:        topicResults.Clusters,
		WordFrequencies: topicResults.WordFrequencies,
	}

	aspectResults := p.attributor.Attribute(scored, defs)
	report.Aspects = aspectResults.Summaries
	report.PainPoints = aspectResults.PainPoints

	series, anomalies := p.engine.ComputeTrends(aspectResults.Tagged)
	report.Trends = series
	report.Anomalies = anomalies
	report.AspectTrends = p.engine.ComputeAspectTrends(aspectResults.Tagged)
	report.PeriodComparison = p.engine.CompareHalves(scored)
	report.KeyDrivers = p.engine.ComputeDrivers(aspectResults.Summaries, aspectResults.Tagged)

	report.Segments = models.Segments{
		Ratings:           p.engine.SegmentByRating(scored),
		Categories:        p.engine.SegmentByCategory(scored),
		RatingCorrelation: p.engine.RatingCorrelation(scored),
	}
	report.Summary = models.ExecutiveSummary{
		TotalReviews:      len(scored),
		AvgSentiment:      report.Overview.AvgSentiment,
		NPSProxy:          report.NPS.NPSProxy,
		RatingCorrelation: report.Segments.RatingCorrelation,
		RecentTrend:       p.engine.RecentTrend(scored),
	}
	report.Alerts = p.engine.AlertConditions(report.Overview, series)
	report.SampleReviews = sentiment.ExtremeReviews(scored, p.cfg.Sentiment.ExtremeThreshold, p.cfg.Sentiment.SampleCount)

	slog.Info("[Pipeline] Analysis complete",
		slog.Int("scored", len(scored)),
		slog.Int("skipped", skipped),
		slog.Duration("elapsed", time.Since(start)))

	return report, nil
}
