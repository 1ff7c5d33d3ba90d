// Package resilience provides fault tolerance patterns for the application.
//
// The circuitbreaker subpackage wraps database access so that a struggling
// database sheds load fast instead of queueing requests until everything
// times out:
//
//	cb := circuitbreaker.NewDBCircuitBreaker(db)
//	repo := postgres.NewArticleRepo(cb)
package resilience
