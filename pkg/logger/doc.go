// Package logger builds *slog.Logger instances with functional options and
// injects request-scoped attributes from context.Context.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which runs every registered ContextExtractor
// when a record is handled:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, cfg.AppName),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "signup accepted",
//		logger.Component("signup"),
//		slog.String("email", sanitizer.MaskEmail(email)),
//	)
//
// Attribute helpers in attr.go keep key names consistent across packages.
// Never log raw form values; log field ids and error codes instead.
package logger
