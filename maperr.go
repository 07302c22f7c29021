/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package future

// mapErrFuture is the Future returned by MapErr.
type mapErrFuture[T, E, F any] struct {
	inner collapsed[T, E]
	fn    func(E) F
	done  bool
}

// MapErr changes a future's error type from E to F by applying fn to an
// Other(e) error. Panicked errors pass through untouched -- MapErr (like
// every combinator) never translates an abort into a domain error. fn is
// dropped the instant the inner future resolves, called or not (P4).
func MapErr[T, E, F any](inner Future[T, E], fn func(E) F) Future[T, F] {
	return &mapErrFuture[T, E, F]{inner: newCollapsed(inner), fn: fn}
}

func (m *mapErrFuture[T, E, F]) Poll(tokens Tokens) (T, *PollError[F], bool) {
	var zero T
	if m.done {
		return zero, reusedError[F](), true
	}

	v, pollErr, ready := m.inner.poll(tokens)
	if !ready {
		return zero, nil, false
	}
	m.done = true

	fn := m.fn
	m.fn = nil

	if pollErr == nil {
		return v, nil, true
	}
	if pollErr.Kind == PollErrorPanicked {
		return zero, panicError[F](pollErr.Panic), true
	}

	mappedErr, synthesized := recoverPoll(func() (F, *PollError[F]) {
		return fn(pollErr.Other), nil
	})
	if synthesized != nil {
		return zero, synthesized, true
	}
	return zero, otherError(mappedErr), true
}

func (m *mapErrFuture[T, E, F]) Schedule(wake Wake) Tokens {
	return m.inner.schedule(wake)
}

func (m *mapErrFuture[T, E, F]) Tailcall() (Future[T, F], bool) {
	m.inner.collapse()
	return nil, false
}
