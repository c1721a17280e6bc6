package config

// InterceptorConfig controls which route groups get invocation logging.
type InterceptorConfig struct {
	// IncludeUserRoutes extends logging to the user routes.
	// Project and task routes are always observed.
	IncludeUserRoutes bool
}

// LoadInterceptorConfigFromEnv loads interceptor configuration from environment variables.
func LoadInterceptorConfigFromEnv() InterceptorConfig {
	return InterceptorConfig{
		IncludeUserRoutes: GetEnvBool("INTERCEPTOR_INCLUDE_USER_ROUTES", false),
	}
}
