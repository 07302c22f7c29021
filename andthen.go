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

// andThenFuture is the Future returned by AndThen: like Then, but fn only
// runs on success; any error (domain or Panicked) passes straight through
// and fn is dropped eagerly without being called.
type andThenFuture[T, E, U any] struct {
	first  *collapsed[T, E]
	fn     func(T) IntoFuture[U, E]
	second *collapsed[U, E]
	done   bool
}

// AndThen executes another future after inner resolves successfully,
// feeding its value to fn. If inner fails (domain error or Panicked), fn
// is never called and is dropped the instant that's known (P4).
func AndThen[T, E, U any](inner Future[T, E], fn func(T) IntoFuture[U, E]) Future[U, E] {
	c := newCollapsed(inner)
	return &andThenFuture[T, E, U]{first: &c, fn: fn}
}

func (a *andThenFuture[T, E, U]) Poll(tokens Tokens) (U, *PollError[E], bool) {
	var zero U
	if a.done {
		return zero, reusedError[E](), true
	}

	if a.second != nil {
		v, pollErr, ready := a.second.poll(tokens)
		if ready {
			a.done = true
		}
		return v, pollErr, ready
	}

	v, pollErr, ready := a.first.poll(tokens)
	if !ready {
		return zero, nil, false
	}

	a.fn2dropOnError(pollErr)
	if pollErr != nil {
		a.done = true
		return zero, pollErr, true
	}

	fn := a.fn
	a.fn = nil
	a.first = nil

	next, synthesized := recoverPoll(func() (Future[U, E], *PollError[E]) {
		return fn(v).IntoFuture(), nil
	})
	if synthesized != nil {
		a.done = true
		return zero, synthesized, true
	}

	c := newCollapsed(next)
	a.second = &c
	v2, pollErr2, ready2 := a.second.poll(tokens)
	if ready2 {
		a.done = true
	}
	return v2, pollErr2, ready2
}

// fn2dropOnError releases the closure eagerly when the inner future has
// resolved with any error, since it will never be invoked in that case.
func (a *andThenFuture[T, E, U]) fn2dropOnError(pollErr *PollError[E]) {
	if pollErr != nil {
		a.fn = nil
		a.first = nil
	}
}

func (a *andThenFuture[T, E, U]) Schedule(wake Wake) Tokens {
	if a.second != nil {
		return a.second.schedule(wake)
	}
	return a.first.schedule(wake)
}

func (a *andThenFuture[T, E, U]) Tailcall() (Future[U, E], bool) {
	if a.second != nil {
		a.second.collapse()
		return a.second.take(), true
	}
	if a.first != nil {
		a.first.collapse()
	}
	return nil, false
}
