// Package logger provides structured logging for the geoloc components.
//
// It wraps go.uber.org/zap behind a small method set that every component in
// this module depends on through its own Logger interface:
//
//	Info(msg string, err error, fields ...map[string]interface{})
//	Debug(msg string, err error, fields ...map[string]interface{})
//	Warn(msg string, err error, fields ...map[string]interface{})
//	Error(msg string, err error, fields ...map[string]interface{})
//
// Direct usage:
//
//	log := logger.NewLoggerClient(logger.Config{Level: logger.Debug, ServiceName: "geoloc"})
//	log.Warn("skipping record", nil, map[string]interface{}{"index": 12})
//
// With fx, include logger.FXModule and supply a logger.Config.
package logger
