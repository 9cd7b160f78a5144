package tracer

// Config defines the tracer settings.
type Config struct {
	// ServiceName is reported as the service.name resource attribute.
	ServiceName string

	// AppEnv is reported as deployment.environment, e.g. "production".
	AppEnv string

	// EnableExport turns on the OTLP/HTTP exporter. When false spans are
	// created but never leave the process.
	EnableExport bool

	// EndpointURL overrides the collector URL, e.g. "http://otel-collector:4318/v1/traces".
	// Empty means the OTEL_EXPORTER_OTLP_* environment variables decide.
	EndpointURL string
}
