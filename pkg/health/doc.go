// Package health provides liveness and readiness HTTP handlers.
//
// Liveness always answers OK. Readiness runs a set of named [Checks] in
// parallel under a shared timeout and answers 503 when any of them fails:
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//		"approval_template": func(context.Context) error {
//			_, err := mailer.RenderApproval("probe", loginURL)
//			return err
//		},
//	}, health.WithLogger(log)))
//
// Responses are plain text by default. Send Accept: application/json or
// ?format=json to get the per-check breakdown.
package health
