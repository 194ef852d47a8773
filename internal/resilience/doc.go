// Package resilience groups fault tolerance helpers.
//
// Subpackages:
//   - retry: exponential backoff with jitter, used while connecting to the database
//
// Usage Example:
//
//	err := retry.WithBackoff(ctx, retry.DBConnectConfig(), func() error {
//	    return db.PingContext(ctx)
//	})
package resilience
