// Package site assembles the ITopIA marketing site.
//
// It turns a Config into a running server: the HTTP framework from
// internal, the middleware stack, the page and contact handlers, the
// contact dispatcher and the per-visitor form registry.
//
// # Quick Start
//
//	cfg, err := site.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	log := logger.New(cfg.Logger, middlewares.RequestIDExtractor())
//
//	srv, err := site.New(ctx, cfg, log)
//	if err != nil {
//	    log.Error("setup failed", "error", err)
//	    os.Exit(1)
//	}
//	if err := srv.Run(ctx); err != nil {
//	    log.Error("server stopped", "error", err)
//	}
//
// # Contact dispatchers
//
// CONTACT_DISPATCHER selects how submissions leave the site:
//
//   - "emailjs" (default) posts each submission to the EmailJS REST API;
//   - "resend" mails it to CONTACT_INBOX through Resend.
//
// Tests and embedders can inject any contact.Dispatcher with WithDispatcher.
//
// # Draft storage
//
// Form drafts live in memory unless REDIS_URL is set, in which case they
// are autosaved to Redis and survive restarts for FORM_DRAFT_TTL. Redis is
// then part of the readiness check.
package site
