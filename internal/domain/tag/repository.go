package tag

import "context"

// CounterRepository is the persistence contract for per-prefix tag counters.
//
// Next and RaiseTo are the only mutations. Next must be an atomic
// increment-and-fetch (creating the counter at 0 when absent) so concurrent
// allocations on the same prefix serialize in the store instead of racing a
// read-then-set. RaiseTo must never lower a stored counter.
type CounterRepository interface {
	// Get returns the counter for a prefix, or a not-found error when no
	// allocation has ever touched the prefix
	Get(ctx context.Context, prefix string) (*Counter, error)

	// List returns all counters ordered by prefix
	List(ctx context.Context) ([]*Counter, error)

	// Next atomically increments the counter for the prefix and returns the
	// new value, upserting the counter from zero on first use
	Next(ctx context.Context, prefix string) (int64, error)

	// RaiseTo lifts the counter to at least n, upserting when absent. A
	// counter already at or above n is left untouched.
	RaiseTo(ctx context.Context, prefix string, n int64) error
}
