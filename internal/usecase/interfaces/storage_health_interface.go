package interfaces

import "context"

// IStorageHealthChecker reports whether the document store answers.
type IStorageHealthChecker interface {
	Ping(ctx context.Context) error
	Driver() string
}
