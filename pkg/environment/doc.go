// Package environment carries the deployment environment (development,
// staging, production) through configuration and request contexts.
//
//	env := environment.Parse(cfg.Env)
//	r.Use(environment.Middleware(env))
//
//	if !environment.IsProduction(r.Context()) {
//		// show the environment banner
//	}
package environment
