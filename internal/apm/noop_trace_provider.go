package apm

// noopTraceProvider is used when tracing is disabled. Spans are still
// created through the global otel API but never exported.
type noopTraceProvider struct{}

func NewEmptyTraceProvider() TraceProvider {
	return noopTraceProvider{}
}

func (noopTraceProvider) Stop() error {
	return nil
}
