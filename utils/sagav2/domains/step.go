package domains

import "context"

// Step is one unit of a saga. CompensateFunc undoes Func and may be nil.
type Step struct {
	Name           string
	Index          int
	Func           func(ctx context.Context) error
	CompensateFunc func(ctx context.Context) error
}
