package interfaces

// HealthChecker tells whether the downstream dependency accepts work
type HealthChecker interface {
	IsUnavailable() bool
}

// DownstreamClient performs a unit of work against the downstream dependency
type DownstreamClient interface {
	Process(key, value string) (string, error)
}
