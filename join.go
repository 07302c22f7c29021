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

// JoinPair is what Join resolves to: both sides' values once both have
// finished.
type JoinPair[A, B any] struct {
	First  A
	Second B
}

// joinFuture drives two differently-typed futures to completion
// concurrently, grounded on concurrent/future/join.go's per-input
// pending/done tracking -- generalized here to two distinct result types
// instead of a homogeneous []interface{} slot, and to short-circuit (and
// eagerly drop the still-running side) the instant either one fails,
// since Join's error type is shared across both sides.
type joinFuture[A, B, E any] struct {
	a     Future[A, E]
	b     Future[B, E]
	aVal  A
	bVal  B
	aDone bool
	bDone bool
	done  bool
}

// Join waits for both a and b, resolving with a JoinPair of their values.
// If either fails (domain error or Panicked), Join resolves with that
// error immediately and drops the other future without waiting on it.
func Join[A, B, E any](a Future[A, E], b Future[B, E]) Future[JoinPair[A, B], E] {
	return &joinFuture[A, B, E]{a: a, b: b}
}

func (j *joinFuture[A, B, E]) Poll(tokens Tokens) (JoinPair[A, B], *PollError[E], bool) {
	var zero JoinPair[A, B]
	if j.done {
		return zero, reusedError[E](), true
	}

	if !j.aDone && j.a != nil {
		v, pollErr, ready := j.a.Poll(tokens)
		if ready {
			if pollErr != nil {
				j.a, j.b = nil, nil
				j.done = true
				return zero, pollErr, true
			}
			j.aVal, j.aDone, j.a = v, true, nil
		}
	}

	if !j.bDone && j.b != nil {
		v, pollErr, ready := j.b.Poll(tokens)
		if ready {
			if pollErr != nil {
				j.a, j.b = nil, nil
				j.done = true
				return zero, pollErr, true
			}
			j.bVal, j.bDone, j.b = v, true, nil
		}
	}

	if j.aDone && j.bDone {
		j.done = true
		return JoinPair[A, B]{First: j.aVal, Second: j.bVal}, nil, true
	}
	return zero, nil, false
}

func (j *joinFuture[A, B, E]) Schedule(wake Wake) Tokens {
	if j.done {
		return scheduleReady(wake)
	}
	tokens := Tokens{}
	if !j.aDone && j.a != nil {
		tokens = tokens.Union(j.a.Schedule(wake))
	}
	if !j.bDone && j.b != nil {
		tokens = tokens.Union(j.b.Schedule(wake))
	}
	return tokens
}

// Tailcall collapses whichever child is still running in place. Like
// Select, Join can't replace itself with a single child, since it holds
// (up to) two of them.
func (j *joinFuture[A, B, E]) Tailcall() (Future[JoinPair[A, B], E], bool) {
	if j.done {
		return nil, false
	}
	if !j.aDone && j.a != nil {
		ac := newCollapsed(j.a)
		ac.collapse()
		j.a = ac.take()
	}
	if !j.bDone && j.b != nil {
		bc := newCollapsed(j.b)
		bc.collapse()
		j.b = bc.take()
	}
	return nil, false
}
