package contract

import "context"

// RawQueryRepository is the constrained execution path for queries the
// synthesizer produced. Implementations run the statement inside a
// read-only transaction; the security validation happens before any call
// reaches this interface.
type RawQueryRepository interface {
	SelectRows(ctx context.Context, query string) ([]map[string]interface{}, error)
}
