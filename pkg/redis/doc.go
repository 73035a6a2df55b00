// Package redis opens go-redis clients from a URL-based Config and exposes
// readiness and shutdown hooks for them.
//
// The site uses Redis only to share contact drafts between replicas, so the
// package is optional: when Config.URL is empty the caller keeps drafts in
// memory.
//
//	if cfg.Redis.Enabled() {
//		client, err := redis.Open(ctx, cfg.Redis)
//		if err != nil {
//			return err
//		}
//		store := form.NewRedisStore(client, cfg.Form.RedisPrefix, cfg.Form.DraftTTL)
//		checks["redis"] = redis.Healthcheck(client)
//		hooks = append(hooks, redis.Shutdown(client))
//	}
package redis
