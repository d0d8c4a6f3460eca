// Package fetchstate tracks the lifecycle of one independent fetch: idle,
// loading, loaded or failed. Data from the last successful load survives a
// later failure so views can keep showing it.
package fetchstate

import "context"

type Phase int

const (
	Idle Phase = iota
	Loading
	Loaded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

type State[T any] struct {
	phase   Phase
	data    T
	hasData bool
	err     error
}

func (s *State[T]) Phase() Phase { return s.phase }

// Data returns the most recent successfully loaded value.
func (s *State[T]) Data() (T, bool) { return s.data, s.hasData }

func (s *State[T]) Err() error { return s.err }

func (s *State[T]) IsLoading() bool { return s.phase == Loading }

// Blocking is a failure with nothing to show.
func (s *State[T]) Blocking() bool { return s.phase == Failed && !s.hasData }

// Stale is a failure while older data is still on display.
func (s *State[T]) Stale() bool { return s.phase == Failed && s.hasData }

func (s *State[T]) Start() {
	s.phase = Loading
}

func (s *State[T]) Succeed(v T) {
	s.phase = Loaded
	s.data = v
	s.hasData = true
	s.err = nil
}

func (s *State[T]) Fail(err error) {
	s.phase = Failed
	s.err = err
}

// Load runs fetch and records its outcome. If ctx is done by the time fetch
// returns, the result is dropped, the previous state is restored and ctx's
// error is returned.
func (s *State[T]) Load(ctx context.Context, fetch func(context.Context) (T, error)) error {
	prev := *s
	s.Start()

	v, err := fetch(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		*s = prev
		return ctxErr
	}
	if err != nil {
		s.Fail(err)
		return err
	}
	s.Succeed(v)
	return nil
}
