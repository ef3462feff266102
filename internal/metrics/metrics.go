// Package metrics provides Prometheus metrics for feed_digest.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "feed_digest"

var (
	// RefreshTotal counts individual feed refreshes by outcome.
	RefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_refresh_total",
			Help:      "Total number of feed refresh attempts",
		},
		[]string{"status"},
	)

	// RefreshBatchDuration measures how long a refresh fan-out takes to settle.
	RefreshBatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "feed_refresh_batch_duration_seconds",
			Help:      "Duration of refresh batches in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// FreshnessChecks counts feeds checked against the URL cache by result.
	FreshnessChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "freshness_checks_total",
			Help:      "Feeds checked against the URL fetch cache",
		},
		[]string{"result"},
	)

	// PrepareTotal counts prepare requests by outcome.
	PrepareTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prepare_total",
			Help:      "Total number of prepare requests",
		},
		[]string{"outcome"},
	)

	// ArticlesAggregated observes aggregation result sizes.
	ArticlesAggregated = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "articles_aggregated",
			Help:      "Distribution of aggregated article set sizes",
			Buckets:   []float64{1, 5, 10, 25, 50, 75, 100},
		},
	)

	// DeletionArticles counts what feed deletion did to referenced articles.
	DeletionArticles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deletion_articles_total",
			Help:      "Articles touched by reference-counted feed deletion",
		},
		[]string{"action"},
	)

	// NewslettersRecorded counts generation results by outcome.
	NewslettersRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "newsletters_recorded_total",
			Help:      "Generation results received from the generator",
		},
		[]string{"outcome"},
	)

	// JanitorRemoved counts rows removed by the janitor.
	JanitorRemoved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "janitor_removed_total",
			Help:      "Rows removed by janitor sweeps",
		},
		[]string{"kind"},
	)
)

// RecordRefreshBatch records the tally of one refresh fan-out.
func RecordRefreshBatch(succeeded, failed int, seconds float64) {
	RefreshTotal.WithLabelValues("success").Add(float64(succeeded))
	RefreshTotal.WithLabelValues("failure").Add(float64(failed))
	RefreshBatchDuration.Observe(seconds)
}

// RecordFreshness records how many feeds were fresh or stale in one check.
func RecordFreshness(fresh, stale int) {
	FreshnessChecks.WithLabelValues("fresh").Add(float64(fresh))
	FreshnessChecks.WithLabelValues("stale").Add(float64(stale))
}

// RecordPrepare records a prepare outcome.
func RecordPrepare(outcome string) {
	PrepareTotal.WithLabelValues(outcome).Inc()
}

// RecordDeletion records the per-article actions of one feed deletion.
func RecordDeletion(detached, deleted int) {
	DeletionArticles.WithLabelValues("detached").Add(float64(detached))
	DeletionArticles.WithLabelValues("deleted").Add(float64(deleted))
}

// RecordSweep records a janitor pass.
func RecordSweep(orphans, evicted int64) {
	JanitorRemoved.WithLabelValues("orphan_article").Add(float64(orphans))
	JanitorRemoved.WithLabelValues("fetch_cache").Add(float64(evicted))
}

// RecordNewsletter records what happened to one generation result.
func RecordNewsletter(outcome string) {
	NewslettersRecorded.WithLabelValues(outcome).Inc()
}
