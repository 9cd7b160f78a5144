package metrics

// Config defines how metrics are labelled and exported.
//
// geoloc runs as a short-lived job, so instead of serving /metrics the
// registry is pushed to a Prometheus Pushgateway when the application stops.
type Config struct {
	// ServiceName is attached to every metric as the constant "service" label.
	ServiceName string

	// PushgatewayURL enables pushing on shutdown, e.g. "http://pushgateway:9091".
	// Leave empty to keep metrics in-process only.
	PushgatewayURL string

	// Job is the Pushgateway job name. Default: DefaultJob.
	Job string

	// EnableDefaultCollectors registers the Go runtime and process collectors.
	EnableDefaultCollectors bool
}

// DefaultJob is the Pushgateway job name used when Config.Job is empty.
const DefaultJob = "geoloc"
