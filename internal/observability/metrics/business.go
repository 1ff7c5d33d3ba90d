package metrics

import "time"

// RecordArticleCreated records an article created through the admin API.
func RecordArticleCreated() {
	ArticlesCreatedTotal.Inc()
}

// RecordArticlePublished records a publish transition.
// Trigger should be "admin" for manual publishes and "scheduler" for the
// publish-at worker.
func RecordArticlePublished(trigger string) {
	ArticlesPublishedTotal.WithLabelValues(trigger).Inc()
}

// RecordArticlesDeleted records a bulk hard delete.
func RecordArticlesDeleted(count int64) {
	ArticlesDeletedTotal.Add(float64(count))
}

// RecordTagsReconciled records the outcome of a tag reconciliation pass
// on an article write.
func RecordTagsReconciled(attached, created int) {
	if attached > 0 {
		TagsReconciledTotal.WithLabelValues("attached").Add(float64(attached))
	}
	if created > 0 {
		TagsReconciledTotal.WithLabelValues("created").Add(float64(created))
	}
}

// RecordDeleteGuardRejection records a soft delete blocked by live article
// references. Entity should be "category" or "tag".
func RecordDeleteGuardRejection(entity string) {
	DeleteGuardRejectionsTotal.WithLabelValues(entity).Inc()
}

// RecordCommentReceived records a reader comment submission.
func RecordCommentReceived() {
	CommentsReceivedTotal.Inc()
}

// RecordContactMessageReceived records a contact form submission.
func RecordContactMessageReceived() {
	ContactMessagesReceivedTotal.Inc()
}

// UpdateArticlesTotal updates the live article count gauge.
// Refreshed periodically by the worker.
func UpdateArticlesTotal(count int64) {
	ArticlesTotal.Set(float64(count))
}

// RecordDBQuery records the duration of a database query operation.
// Operation should describe the query type (e.g., "select_articles").
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateDBConnectionStats updates database connection pool statistics.
func UpdateDBConnectionStats(active, idle int) {
	DBConnectionsActive.Set(float64(active))
	DBConnectionsIdle.Set(float64(idle))
}
