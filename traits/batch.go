package traits

import (
	"context"
	"reflect"

	"golang.org/x/sync/semaphore"
)

// ExplainAll classifies a list of type descriptors in parallel with a
// maximum of inflight workers. The predicates are pure and evaluation
// order between types does not matter, so the reports come back in
// input order regardless of scheduling.
//
// Context cancellation: If the context is canceled, ExplainAll will
// immediately stop classifying any new types, wait for workers running
// to exit, then return the context error.
func ExplainAll(
	ctx context.Context, list []reflect.Type, inflight int,
) (result []Report, err error) {
	if inflight <= 0 {
		inflight = 1
	}

	result = make([]Report, len(list))

	sema := semaphore.NewWeighted(int64(inflight))

	for i, t := range list {
		err = sema.Acquire(ctx, 1)
		if err != nil {
			// ctx was canceled
			break
		}

		go func(i int, t reflect.Type) {
			defer sema.Release(1)
			result[i] = Explain(t)
		}(i, t)
	}

	if err == nil {
		// possible that the context is canceled after we started the last worker
		// but before we acquired the entire semaphore
		err = sema.Acquire(ctx, int64(inflight))
		if err != nil {
			for sema.Acquire(context.Background(), int64(inflight)) != nil {
			}
		}
	} else {
		// context is already canceled, this will eventually acquire
		for sema.Acquire(context.Background(), int64(inflight)) != nil {
		}
	}

	return
}
