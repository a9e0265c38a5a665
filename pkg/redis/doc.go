// Package redis connects to Redis with retries and exposes a readiness check.
// The signup rate limiter uses it to share buckets between instances.
//
//	client, err := redis.Connect(ctx, cfg.Redis)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := ratelimiter.NewRedisStore(client, "signup:ratelimit:")
package redis
