package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"

	"github.com/Aleph-Alpha/geoloc/v1/geoindex"
	"github.com/Aleph-Alpha/geoloc/v1/logger"
	"github.com/Aleph-Alpha/geoloc/v1/metrics"
	"github.com/Aleph-Alpha/geoloc/v1/minio"
	"github.com/Aleph-Alpha/geoloc/v1/redis"
	"github.com/Aleph-Alpha/geoloc/v1/tracer"
)

// Config holds the full application configuration.
type Config struct {
	Index   IndexConfig   `yaml:"index" mapstructure:"index"`
	Input   InputConfig   `yaml:"input" mapstructure:"input"`
	Redis   RedisConfig   `yaml:"redis" mapstructure:"redis"`
	Minio   MinioConfig   `yaml:"minio" mapstructure:"minio"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
	Tracer  TracerConfig  `yaml:"tracer" mapstructure:"tracer"`
}

// IndexConfig configures importing and searching.
type IndexConfig struct {
	Key                  string `yaml:"key" mapstructure:"key"`
	BatchSize            int    `yaml:"batch_size" mapstructure:"batch_size"`
	WriteMode            string `yaml:"write_mode" mapstructure:"write_mode"`
	AllowZeroCoordinates bool   `yaml:"allow_zero_coordinates" mapstructure:"allow_zero_coordinates"`
	SearchConcurrency    int    `yaml:"search_concurrency" mapstructure:"search_concurrency"`
}

// InputConfig names the file or s3:// object to import.
type InputConfig struct {
	Location string `yaml:"location" mapstructure:"location"`
}

// RedisConfig configures the Redis connection.
type RedisConfig struct {
	Host         string         `yaml:"host" mapstructure:"host"`
	Port         int            `yaml:"port" mapstructure:"port"`
	Username     string         `yaml:"username" mapstructure:"username"`
	Password     string         `yaml:"password" mapstructure:"password"`
	DB           int            `yaml:"db" mapstructure:"db"`
	PoolSize     int            `yaml:"pool_size" mapstructure:"pool_size"`
	DialTimeout  time.Duration  `yaml:"dial_timeout" mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration  `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration  `yaml:"write_timeout" mapstructure:"write_timeout"`
	TLS          RedisTLSConfig `yaml:"tls" mapstructure:"tls"`
}

// RedisTLSConfig configures TLS for the Redis connection.
type RedisTLSConfig struct {
	Enabled            bool   `yaml:"enabled" mapstructure:"enabled"`
	InsecureSkipVerify bool   `yaml:"insecure_skip_verify" mapstructure:"insecure_skip_verify"`
	CACertPath         string `yaml:"ca_cert_path" mapstructure:"ca_cert_path"`
	ClientCertPath     string `yaml:"client_cert_path" mapstructure:"client_cert_path"`
	ClientKeyPath      string `yaml:"client_key_path" mapstructure:"client_key_path"`
	ServerName         string `yaml:"server_name" mapstructure:"server_name"`
}

// MinioConfig configures object storage input. An empty endpoint disables it.
type MinioConfig struct {
	Endpoint        string `yaml:"endpoint" mapstructure:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id" mapstructure:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key" mapstructure:"secret_access_key"`
	UseSSL          bool   `yaml:"use_ssl" mapstructure:"use_ssl"`
	Region          string `yaml:"region" mapstructure:"region"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level       string `yaml:"level" mapstructure:"level"`
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
	Development bool   `yaml:"development" mapstructure:"development"`
}

// MetricsConfig configures the Pushgateway export.
type MetricsConfig struct {
	PushgatewayURL          string `yaml:"pushgateway_url" mapstructure:"pushgateway_url"`
	Job                     string `yaml:"job" mapstructure:"job"`
	EnableDefaultCollectors bool   `yaml:"enable_default_collectors" mapstructure:"enable_default_collectors"`
}

// TracerConfig configures span export.
type TracerConfig struct {
	EnableExport bool   `yaml:"enable_export" mapstructure:"enable_export"`
	AppEnv       string `yaml:"app_env" mapstructure:"app_env"`
	EndpointURL  string `yaml:"endpoint_url" mapstructure:"endpoint_url"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("GEOLOC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults. Every key is registered so AutomaticEnv can override it.
	v.SetDefault("index.key", geoindex.DefaultIndexKey)
	v.SetDefault("index.batch_size", geoindex.DefaultBatchSize)
	v.SetDefault("index.write_mode", string(geoindex.DefaultWriteMode))
	v.SetDefault("index.allow_zero_coordinates", false)
	v.SetDefault("index.search_concurrency", geoindex.DefaultSearchConcurrency)
	v.SetDefault("input.location", "")
	v.SetDefault("redis.host", redis.DefaultHost)
	v.SetDefault("redis.port", redis.DefaultPort)
	v.SetDefault("redis.username", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", redis.DefaultDB)
	v.SetDefault("redis.pool_size", 0)
	v.SetDefault("redis.dial_timeout", redis.DefaultDialTimeout)
	v.SetDefault("redis.read_timeout", redis.DefaultReadTimeout)
	v.SetDefault("redis.write_timeout", time.Duration(0))
	v.SetDefault("redis.tls.enabled", false)
	v.SetDefault("redis.tls.insecure_skip_verify", false)
	v.SetDefault("redis.tls.ca_cert_path", "")
	v.SetDefault("redis.tls.client_cert_path", "")
	v.SetDefault("redis.tls.client_key_path", "")
	v.SetDefault("redis.tls.server_name", "")
	v.SetDefault("minio.endpoint", "")
	v.SetDefault("minio.access_key_id", "")
	v.SetDefault("minio.secret_access_key", "")
	v.SetDefault("minio.use_ssl", false)
	v.SetDefault("minio.region", "")
	v.SetDefault("log.level", logger.Info)
	v.SetDefault("log.service_name", "geoloc")
	v.SetDefault("log.development", false)
	v.SetDefault("metrics.pushgateway_url", "")
	v.SetDefault("metrics.job", metrics.DefaultJob)
	v.SetDefault("metrics.enable_default_collectors", false)
	v.SetDefault("tracer.enable_export", false)
	v.SetDefault("tracer.app_env", "development")
	v.SetDefault("tracer.endpoint_url", "")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// GeoIndex converts the index section into a geoindex.Config.
func (c *Config) GeoIndex() (geoindex.Config, error) {
	mode, err := geoindex.ParseWriteMode(c.Index.WriteMode)
	if err != nil {
		return geoindex.Config{}, eris.Wrap(err, "config: index.write_mode")
	}
	return geoindex.Config{
		IndexKey:             c.Index.Key,
		BatchSize:            c.Index.BatchSize,
		WriteMode:            mode,
		AllowZeroCoordinates: c.Index.AllowZeroCoordinates,
		SearchConcurrency:    c.Index.SearchConcurrency,
	}, nil
}

// RedisClient converts the redis section into a redis.Config.
func (c *Config) RedisClient() redis.Config {
	return redis.Config{
		Host:         c.Redis.Host,
		Port:         c.Redis.Port,
		Username:     c.Redis.Username,
		Password:     c.Redis.Password,
		DB:           c.Redis.DB,
		PoolSize:     c.Redis.PoolSize,
		DialTimeout:  c.Redis.DialTimeout,
		ReadTimeout:  c.Redis.ReadTimeout,
		WriteTimeout: c.Redis.WriteTimeout,
		TLS: redis.TLSConfig{
			Enabled:            c.Redis.TLS.Enabled,
			CACertPath:         c.Redis.TLS.CACertPath,
			ClientCertPath:     c.Redis.TLS.ClientCertPath,
			ClientKeyPath:      c.Redis.TLS.ClientKeyPath,
			InsecureSkipVerify: c.Redis.TLS.InsecureSkipVerify,
			ServerName:         c.Redis.TLS.ServerName,
		},
	}
}

// MinioEnabled reports whether s3:// inputs can be fetched.
func (c *Config) MinioEnabled() bool {
	return c.Minio.Endpoint != ""
}

// MinioClient converts the minio section into a minio.Config.
func (c *Config) MinioClient() minio.Config {
	return minio.Config{
		Endpoint:        c.Minio.Endpoint,
		AccessKeyID:     c.Minio.AccessKeyID,
		SecretAccessKey: c.Minio.SecretAccessKey,
		UseSSL:          c.Minio.UseSSL,
		Region:          c.Minio.Region,
	}
}

// Logger converts the log section into a logger.Config.
func (c *Config) Logger() logger.Config {
	return logger.Config{
		Level:       c.Log.Level,
		ServiceName: c.Log.ServiceName,
		Development: c.Log.Development,
	}
}

// MetricsConfig converts the metrics section into a metrics.Config.
func (c *Config) MetricsConfig() metrics.Config {
	return metrics.Config{
		ServiceName:             c.Log.ServiceName,
		PushgatewayURL:          c.Metrics.PushgatewayURL,
		Job:                     c.Metrics.Job,
		EnableDefaultCollectors: c.Metrics.EnableDefaultCollectors,
	}
}

// TracerConfig converts the tracer section into a tracer.Config.
func (c *Config) TracerConfig() tracer.Config {
	return tracer.Config{
		ServiceName:  c.Log.ServiceName,
		AppEnv:       c.Tracer.AppEnv,
		EnableExport: c.Tracer.EnableExport,
		EndpointURL:  c.Tracer.EndpointURL,
	}
}
