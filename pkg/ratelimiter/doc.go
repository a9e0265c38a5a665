// Package ratelimiter implements token bucket rate limiting.
//
// A Bucket applies one Config to any number of keys and persists state in a
// Store: MemoryStore for a single instance, RedisStore when several
// instances share limits. Denied requests do not consume tokens.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       5,
//		RefillRate:     1,
//		RefillInterval: time.Minute,
//	})
//	if err != nil {
//		return err
//	}
//
//	result, err := limiter.Allow(ctx, clientip.FromRequest(r))
//	if err == nil && !result.Allowed() {
//		// reject, retry after result.RetryAfter()
//	}
//
// Middleware wraps an http.Handler, sets X-RateLimit-* headers and answers
// 429 when the bucket is empty.
package ratelimiter
