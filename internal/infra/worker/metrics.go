// Package worker holds the infrastructure pieces of the scheduled publisher:
// configuration loading, health probes, and job metrics.
package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus collectors for the publisher job. Registered once at package
// load on the default registry; the worker binary exposes them through its
// health server.
var (
	// JobRunsTotal counts publisher runs by outcome.
	JobRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "publisher_job_runs_total",
		Help: "Total number of publisher job runs by status (success/failure)",
	}, []string{"status"})

	// JobDuration measures how long a single publisher run takes.
	// Runs are short: they flip a handful of rows per pass.
	JobDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "publisher_job_duration_seconds",
		Help:    "Duration of publisher job execution in seconds",
		Buckets: []float64{.05, .1, .5, 1, 5, 30, 60},
	})

	// ArticlesPublished counts articles moved from draft to published
	// across all runs.
	ArticlesPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "publisher_articles_published_total",
		Help: "Total number of scheduled articles published across all job runs",
	})

	// LastSuccessTimestamp records when the publisher last completed cleanly.
	// Alert on staleness: now() - this > 2x the cron interval means the
	// worker is stuck or crashing.
	LastSuccessTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "publisher_job_last_success_timestamp",
		Help: "Unix timestamp of the last successful publisher job run",
	})

	// ConfigFallbacksTotal counts configuration fields that failed
	// validation and fell back to their defaults.
	ConfigFallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "publisher_config_fallbacks_total",
		Help: "Total number of configuration fallbacks applied, by field",
	}, []string{"field"})
)

// RecordJobRun increments the run counter. Status is "success" or "failure".
func RecordJobRun(status string) {
	JobRunsTotal.WithLabelValues(status).Inc()
}

// RecordJobDuration observes the duration of one publisher run in seconds.
func RecordJobDuration(seconds float64) {
	JobDuration.Observe(seconds)
}

// RecordArticlesPublished adds the number of articles published in one run.
func RecordArticlesPublished(count int) {
	ArticlesPublished.Add(float64(count))
}

// RecordLastSuccess stamps the current time as the last clean completion.
func RecordLastSuccess() {
	LastSuccessTimestamp.SetToCurrentTime()
}

// RecordConfigFallback notes that a config field fell back to its default.
func RecordConfigFallback(field string) {
	ConfigFallbacksTotal.WithLabelValues(field).Inc()
}
