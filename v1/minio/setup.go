package minio

import (
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Aleph-Alpha/geoloc/v1/observability"
)

// Logger is the logging contract satisfied by *logger.Logger.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// MinioClient reads objects from MinIO or any S3-compatible store.
type MinioClient struct {
	client   *minio.Client
	cfg      Config
	logger   Logger
	observer observability.Observer
}

// NewClient creates a client for cfg.Endpoint. No request is made until the
// first Get.
//
// Example:
//
//	client, err := minio.NewClient(minio.Config{
//		Endpoint:        "localhost:9000",
//		AccessKeyID:     "minioadmin",
//		SecretAccessKey: "minioadmin",
//	})
//	data, err := client.Get(ctx, "exports", "locations.json")
func NewClient(cfg Config) (*MinioClient, error) {
	if cfg.Endpoint == "" {
		return nil, ErrEmptyEndpoint
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, err
	}

	return &MinioClient{client: client, cfg: cfg}, nil
}

// WithObserver sets the observer for this client and returns the client for method chaining.
func (m *MinioClient) WithObserver(observer observability.Observer) *MinioClient {
	m.observer = observer
	return m
}

// WithLogger sets the logger for this client and returns the client for method chaining.
func (m *MinioClient) WithLogger(logger Logger) *MinioClient {
	m.logger = logger
	return m
}
