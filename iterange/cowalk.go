package iterange

import "reflect"

// CoRange is returned from CoWalk and abstracts communication with the
// walking goroutine.
type CoRange[E any] struct {
	items <-chan E
	stop  chan<- struct{}
}

// Items returns a channel on which the elements of the range will be
// sent, in order.
func (c CoRange[E]) Items() <-chan E {
	return c.items
}

// Stop stops the walk. This must not be called more than once.
// If the Items channel is closed, this doesn't need to be called.
//
// If you need to stop from multiple goroutines, use a sync.Once:
//
//	var once sync.Once
//	co := CoWalk[...](r)
//	go func() {
//		for item := range co.Items() {
//			if item meets some stopping condition {
//				once.Do(co.Stop)
//			}
//		}
//	}()
func (c CoRange[E]) Stop() {
	close(c.stop)
}

// CoWalk starts coroutine-style traversal of the range.
// The usage is as follows:
//
//	r := iterange.New[C, E](begin, end)
//	co := iterange.CoWalk[C, E](r)
//	for e := range co.Items() {
//		... do stuff with e ...
//		if e meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// Note: CoWalk starts a goroutine, which exits when either Stop is
// called or the walk reaches the end endpoint. If you follow the usage
// above, the goroutine will not live beyond the end of the for-range
// loop.
func CoWalk[I, E any, P Endpoint[I, E]](r Range[I]) CoRange[E] {
	out := make(chan E)
	stop := make(chan struct{})
	co := CoRange[E]{
		items: out,
		stop:  stop,
	}

	go func(out chan<- E, stop <-chan struct{}) {
		defer close(out)
		cur := r.start
		for !reflect.DeepEqual(cur, r.end) {
			select {
			case out <- *P(&cur).Deref():
			case <-stop:
				return
			}
			P(&cur).Next()
		}
	}(out, stop)

	return co
}
