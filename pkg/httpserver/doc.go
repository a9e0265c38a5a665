// Package httpserver runs an http.Handler with configurable timeouts and
// graceful shutdown on context cancellation or SIGINT/SIGTERM, and provides
// liveness and readiness check handlers.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
package httpserver
