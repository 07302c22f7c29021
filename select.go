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

// SelectValue is what Select resolves to when one of the two futures
// finishes successfully: the winner's value, plus a continuation future
// for whichever one didn't. The caller decides whether to keep polling
// Next or let it go, which cancels it.
type SelectValue[T, E any] struct {
	Value T
	Next  Future[T, E]
}

// SelectError is what Select resolves to when the winner finishes with a
// domain (Other) error. As in the Rust source, a Panicked winner does not
// carry the loser along -- mapping a panic payload into a richer error
// type isn't meaningful, so the loser is simply dropped (and so canceled)
// in that case.
type SelectError[T, E any] struct {
	Err  E
	Next Future[T, E]
}

// selectFuture races two same-typed futures and resolves with whichever
// settles first, grounded on original_source/src/select.rs. Unlike that
// source's Select<A, B, T, E> (parameterized separately over the two
// futures' concrete Rust types, purely for zero-cost monomorphization),
// both sides here are the same Future[T, E] interface value, so one type
// parameter pair suffices.
type selectFuture[T, E any] struct {
	a, b    Future[T, E]
	aTokens Tokens
	bTokens Tokens
	done    bool
}

// Select returns a future that resolves as soon as either a or b does,
// handing the caller the winner's outcome and a SelectNext wrapping the
// loser.
func Select[T, E any](a, b Future[T, E]) Future[SelectValue[T, E], SelectError[T, E]] {
	return &selectFuture[T, E]{
		a:       a,
		b:       b,
		aTokens: AllTokens(),
		bTokens: AllTokens(),
	}
}

func (s *selectFuture[T, E]) Poll(tokens Tokens) (SelectValue[T, E], *PollError[SelectError[T, E]], bool) {
	var zero SelectValue[T, E]
	if s.done {
		return zero, reusedError[SelectError[T, E]](), true
	}

	var (
		v         T
		pollErr   *PollError[E]
		ready     bool
		winnerIsA bool
	)

	if !s.aTokens.MayContain(tokens) {
		v, pollErr, ready = s.b.Poll(tokens.Intersect(s.bTokens))
		if !ready {
			return zero, nil, false
		}
		winnerIsA = false
	} else {
		v, pollErr, ready = s.a.Poll(tokens.Intersect(s.aTokens))
		if ready {
			winnerIsA = true
		} else if !s.bTokens.MayContain(tokens) {
			return zero, nil, false
		} else {
			v, pollErr, ready = s.b.Poll(tokens.Intersect(s.bTokens))
			if !ready {
				return zero, nil, false
			}
			winnerIsA = false
		}
	}

	var loser Future[T, E]
	if winnerIsA {
		loser = s.b
	} else {
		loser = s.a
	}
	s.a, s.b = nil, nil
	s.done = true

	next := &selectNext[T, E]{inner: newCollapsed(loser)}

	if pollErr == nil {
		return SelectValue[T, E]{Value: v, Next: next}, nil, true
	}
	if pollErr.Kind == PollErrorPanicked {
		return zero, panicError[SelectError[T, E]](pollErr.Panic), true
	}
	return zero, otherError(SelectError[T, E]{Err: pollErr.Other, Next: next}), true
}

func (s *selectFuture[T, E]) Schedule(wake Wake) Tokens {
	if s.done {
		return scheduleReady(wake)
	}
	s.aTokens = s.a.Schedule(wake)
	s.bTokens = s.b.Schedule(wake)
	return s.aTokens.Union(s.bTokens)
}

// Tailcall collapses both children in place but never replaces Select
// itself: Select holds two futures and can't collapse down to one
// without picking a winner, which is exactly what Poll is for.
func (s *selectFuture[T, E]) Tailcall() (Future[SelectValue[T, E], SelectError[T, E]], bool) {
	if s.done {
		return nil, false
	}
	ac := newCollapsed(s.a)
	ac.collapse()
	s.a = ac.take()
	bc := newCollapsed(s.b)
	bc.collapse()
	s.b = bc.take()
	return nil, false
}

// selectNext is the continuation future handed to the caller for
// whichever side of a Select didn't win. It forwards Poll/Schedule to the
// wrapped future and, on Tailcall, unwraps down to the replacement the
// wrapped future collapses into -- mirroring select.rs's SelectNext,
// which exists solely to strip away the OneOf<A, B> wrapper once its
// contents tail-call into something else.
type selectNext[T, E any] struct {
	inner collapsed[T, E]
}

func (n *selectNext[T, E]) Poll(tokens Tokens) (T, *PollError[E], bool) {
	return n.inner.poll(tokens)
}

func (n *selectNext[T, E]) Schedule(wake Wake) Tokens {
	return n.inner.schedule(wake)
}

func (n *selectNext[T, E]) Tailcall() (Future[T, E], bool) {
	if n.inner.collapse() {
		return n.inner.take(), true
	}
	return nil, false
}
