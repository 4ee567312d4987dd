package noun

import "context"

// Processor turns a single Entry into a Result.
type Processor interface {
	Apply(entry Entry) Result
}

// CancellableProcessor is the streaming / cancellable counterpart of
// Processor.
//
// Implementations emit one Result per entry, in input order. The
// channel must be closed in all cases, including when ctx is canceled.
type CancellableProcessor interface {
	StreamApply(ctx context.Context, entries []Entry) <-chan Result
}
