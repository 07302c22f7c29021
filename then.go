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

// thenFuture is the Future returned by Then. It has three states: First
// (polling the original inner future), Second (polling the continuation
// future returned by fn), and Done.
type thenFuture[T, E, U, V any] struct {
	first  *collapsed[T, E]
	fn     func(Outcome[T, E]) IntoFuture[U, V]
	second *collapsed[U, V]
	done   bool
}

// Then chains a continuation onto inner regardless of how it finishes: fn
// is invoked exactly once with the inner future's Outcome (success or
// domain error -- never on a Panicked result, which propagates through
// Then unchanged per spec.md §7), and its IntoFuture result becomes the
// new inner future.
func Then[T, E, U, V any](inner Future[T, E], fn func(Outcome[T, E]) IntoFuture[U, V]) Future[U, V] {
	c := newCollapsed(inner)
	return &thenFuture[T, E, U, V]{first: &c, fn: fn}
}

func (t *thenFuture[T, E, U, V]) Poll(tokens Tokens) (U, *PollError[V], bool) {
	var zero U
	if t.done {
		return zero, reusedError[V](), true
	}

	if t.second != nil {
		v, pollErr, ready := t.second.poll(tokens)
		if ready {
			t.done = true
		}
		return v, pollErr, ready
	}

	v, pollErr, ready := t.first.poll(tokens)
	if !ready {
		return zero, nil, false
	}

	if pollErr != nil && pollErr.Kind == PollErrorPanicked {
		t.done = true
		t.fn = nil
		t.first = nil
		return zero, panicError[V](pollErr.Panic), true
	}

	var outcome Outcome[T, E]
	if pollErr != nil {
		outcome = Err[T, E](pollErr.Other)
	} else {
		outcome = Ok[T, E](v)
	}

	fn := t.fn
	t.fn = nil
	t.first = nil

	next, synthesized := recoverPoll(func() (Future[U, V], *PollError[V]) {
		return fn(outcome).IntoFuture(), nil
	})
	if synthesized != nil {
		t.done = true
		return zero, synthesized, true
	}

	c := newCollapsed(next)
	t.second = &c
	v2, pollErr2, ready2 := t.second.poll(tokens)
	if ready2 {
		t.done = true
	}
	return v2, pollErr2, ready2
}

func (t *thenFuture[T, E, U, V]) Schedule(wake Wake) Tokens {
	if t.second != nil {
		return t.second.schedule(wake)
	}
	return t.first.schedule(wake)
}

func (t *thenFuture[T, E, U, V]) Tailcall() (Future[U, V], bool) {
	if t.second != nil {
		t.second.collapse()
		return t.second.take(), true
	}
	if t.first != nil {
		t.first.collapse()
	}
	return nil, false
}
