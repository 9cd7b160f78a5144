// Package observability defines the hook through which store clients report
// the operations they perform. Metrics collectors implement Observer.
package observability

import "time"

// OperationContext describes one completed operation.
type OperationContext struct {
	// Component is the reporting client, e.g. "redis".
	Component string

	// Operation is the command name, e.g. "geoadd".
	Operation string

	// Resource is the key the operation targeted.
	Resource string

	// SubResource is optional extra context such as a hash field.
	SubResource string

	Duration time.Duration
	Error    error

	// Size is an operation-specific count: members added, fields returned, keys deleted.
	Size int64

	Metadata map[string]interface{}
}

// Observer receives OperationContext events. Implementations must be safe for
// concurrent use.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx OperationContext)

// ObserveOperation calls f(ctx).
func (f ObserverFunc) ObserveOperation(ctx OperationContext) {
	f(ctx)
}
