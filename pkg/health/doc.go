// Package health serves liveness and readiness checks.
//
//	checker := health.NewChecker(health.Checks{
//		"redis": redis.Healthcheck(client),
//	}, health.WithLogger(log))
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", checker.ReadinessHandler())
//
// Checks run concurrently and share one deadline. Responses are plain text
// unless the request asks for JSON.
package health
