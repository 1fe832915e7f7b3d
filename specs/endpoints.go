package specs

// Service endpoints.
const (
	// ULID minting endpoint.
	ULID = "/ulid"

	// Health probe endpoints.
	Livez  = "/livez"
	Readyz = "/readyz"

	// Prometheus metrics endpoint.
	Metrics = "/metrics"
)
