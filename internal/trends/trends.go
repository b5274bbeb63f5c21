package trends

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/spacesedan/reviewpulse/config"
	"github.com/spacesedan/reviewpulse/internal/models"
)

// Engine derives the temporal and business-metric layer from a scored,
// aspect-tagged corpus. Stateless; safe to share across runs.
type Engine struct {
	cfg config.TrendsConfig
}

func NewEngine(cfg config.TrendsConfig) *Engine {
	return &Engine{cfg: cfg}
}

// ComputeTrends buckets timestamped reviews into fixed-width periods
// and flags z-score anomalies. Reviews without a timestamp are excluded
// here; they still count everywhere else. Returns a nil series when no
// review carries a timestamp. Empty periods between the first and last
// bucket keep their slot with zero volume and null sentiment.
func (e *Engine) ComputeTrends(scored []models.ScoredReview) (*models.TrendSeries, []models.Anomaly) {
	anomalies := []models.Anomaly{}

	type bucket struct {
		sum    float64
		volume int
	}
	buckets := make(map[time.Time]*bucket)

	var first, last time.Time
	for _, r := range scored {
		if r.Timestamp == nil {
			continue
		}
		start := e.bucketStart(r.Timestamp.UTC())
		b := buckets[start]
		if b == nil {
			b = &bucket{}
			buckets[start] = b
		}
		b.sum += r.Compound
		b.volume++

		if first.IsZero() || start.Before(first) {
			first = start
		}
		if last.IsZero() || start.After(last) {
			last = start
		}
	}

	if len(buckets) == 0 {
		return nil, anomalies
	}

	series := &models.TrendSeries{
		Periods:   []string{},
		Sentiment: []*float64{},
		MovingAvg: []*float64{},
		Volume:    []int{},
	}

	for cursor := first; !cursor.After(last); cursor = e.nextBucket(cursor) {
		series.Periods = append(series.Periods, e.periodLabel(cursor))

		b := buckets[cursor]
		if b == nil {
			series.Sentiment = append(series.Sentiment, nil)
			series.Volume = append(series.Volume, 0)
			continue
		}
		avg := round3(b.sum / float64(b.volume))
		series.Sentiment = append(series.Sentiment, &avg)
		series.Volume = append(series.Volume, b.volume)
	}

	series.MovingAvg = e.movingAverage(series.Sentiment)

	return series, e.detectAnomalies(series)
}

// movingAverage computes a trailing simple moving average over the
// configured window. Before the window fills, the average covers the
// available periods; empty periods are skipped inside the window.
func (e *Engine) movingAverage(sentiment []*float64) []*float64 {
	window := e.cfg.MovingWindow
	if window < 1 {
		window = 1
	}

	out := make([]*float64, len(sentiment))
	for i := range sentiment {
		lo := i - window + 1
		if lo < 0 {
			lo = 0
		}

		var sum float64
		count := 0
		for j := lo; j <= i; j++ {
			if sentiment[j] == nil {
				continue
			}
			sum += *sentiment[j]
			count++
		}
		if count == 0 {
			continue
		}
		avg := round3(sum / float64(count))
		out[i] = &avg
	}
	return out
}

// detectAnomalies z-scores each non-empty period against the whole
// series. A zero-variance series reports nothing.
func (e *Engine) detectAnomalies(series *models.TrendSeries) []models.Anomaly {
	anomalies := []models.Anomaly{}

	var values []float64
	for _, s := range series.Sentiment {
		if s != nil {
			values = append(values, *s)
		}
	}
	if len(values) < 2 {
		return anomalies
	}

	mean := stat.Mean(values, nil)
	stddev := stat.StdDev(values, nil)
	if stddev == 0 || math.IsNaN(stddev) {
		return anomalies
	}

	for i, s := range series.Sentiment {
		if s == nil {
			continue
		}
		z := (*s - mean) / stddev
		if math.Abs(z) <= e.cfg.AnomalyThreshold {
			continue
		}

		kind := models.AnomalyPositiveSpike
		if z < 0 {
			kind = models.AnomalyNegativeSpike
		}
		anomalies = append(anomalies, models.Anomaly{
			Period: series.Periods[i],
			Type:   kind,
			ZScore: round2(z),
		})
	}
	return anomalies
}

// ComputeAspectTrends buckets aspect-attributed sentiment over time,
// one row per period and aspect, using the same bucketing as
// ComputeTrends. Rows are ordered by period then aspect key.
func (e *Engine) ComputeAspectTrends(tagged []models.ScoredReview) []models.AspectTrend {
	type agg struct {
		sum   float64
		count int
	}
	buckets := make(map[time.Time]map[string]*agg)

	for _, r := range tagged {
		if r.Timestamp == nil || len(r.AspectSentiments) == 0 {
			continue
		}
		start := e.bucketStart(r.Timestamp.UTC())
		byAspect := buckets[start]
		if byAspect == nil {
			byAspect = make(map[string]*agg)
			buckets[start] = byAspect
		}
		for key, compound := range r.AspectSentiments {
			a := byAspect[key]
			if a == nil {
				a = &agg{}
				byAspect[key] = a
			}
			a.sum += compound
			a.count++
		}
	}

	starts := make([]time.Time, 0, len(buckets))
	for start := range buckets {
		starts = append(starts, start)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	trends := []models.AspectTrend{}
	for _, start := range starts {
		keys := make([]string, 0, len(buckets[start]))
		for key := range buckets[start] {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			a := buckets[start][key]
			trends = append(trends, models.AspectTrend{
				Period:       e.periodLabel(start),
				AspectKey:    key,
				AvgSentiment: round3(a.sum / float64(a.count)),
				MentionCount: a.count,
			})
		}
	}
	return trends
}

func (e *Engine) bucketStart(t time.Time) time.Time {
	switch e.cfg.Granularity {
	case "week":
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		offset := (int(day.Weekday()) + 6) % 7 // Monday start
		return day.AddDate(0, 0, -offset)
	case "month":
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
}

func (e *Engine) nextBucket(t time.Time) time.Time {
	switch e.cfg.Granularity {
	case "week":
		return t.AddDate(0, 0, 7)
	case "month":
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}

func (e *Engine) periodLabel(t time.Time) string {
	if e.cfg.Granularity == "month" {
		return t.Format("2006-01")
	}
	return t.Format("2006-01-02")
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
