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

// mapFuture is the Future returned by Map.
type mapFuture[T, E, U any] struct {
	inner collapsed[T, E]
	fn    func(T) U
	done  bool
}

// Map changes a future's success type from T to U by applying fn once the
// inner future resolves successfully. fn is dropped (set nil) the instant
// the inner future resolves, whether or not it ends up being called (P4):
// on an inner error, fn is never invoked and is released immediately.
//
// fn runs at most once; if it panics, the panic is caught and reported as
// a Panicked error.
func Map[T, E, U any](inner Future[T, E], fn func(T) U) Future[U, E] {
	return &mapFuture[T, E, U]{inner: newCollapsed(inner), fn: fn}
}

func (m *mapFuture[T, E, U]) Poll(tokens Tokens) (U, *PollError[E], bool) {
	var zero U
	if m.done {
		return zero, reusedError[E](), true
	}

	v, pollErr, ready := m.inner.poll(tokens)
	if !ready {
		return zero, nil, false
	}
	m.done = true

	if pollErr != nil {
		m.fn = nil
		return zero, pollErr, true
	}

	fn := m.fn
	m.fn = nil
	result, mapped := recoverPoll(func() (U, *PollError[E]) {
		return fn(v), nil
	})
	return result, mapped, true
}

func (m *mapFuture[T, E, U]) Schedule(wake Wake) Tokens {
	return m.inner.schedule(wake)
}

func (m *mapFuture[T, E, U]) Tailcall() (Future[U, E], bool) {
	m.inner.collapse()
	return nil, false
}
