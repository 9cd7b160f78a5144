package minio

// Config holds the connection settings for a MinIO or S3-compatible endpoint
// that input files are read from.
type Config struct {
	// Endpoint is host[:port] without a scheme, e.g. "minio:9000" or "s3.amazonaws.com".
	Endpoint string

	// AccessKeyID is the access key for authentication.
	AccessKeyID string

	// SecretAccessKey is the secret key for authentication.
	SecretAccessKey string

	// UseSSL selects HTTPS.
	UseSSL bool

	// Region is optional and only needed by endpoints that require it.
	Region string
}
