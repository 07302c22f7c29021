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

// collapsed wraps a single inner future, forwarding Poll/Schedule to
// whichever future is currently active. collapse() swaps inner for its
// Tailcall replacement when one is available, which is how combinator
// chains avoid accumulating a wrapper layer per stage (spec.md §4.7).
//
// Unlike the Rust source's Collapsed<F, T, E> enum (Start(F) / Tail(Box<...>)),
// Go interface values are already type-erased, so a single field suffices:
// there's no monomorphized F to distinguish from a boxed replacement.
type collapsed[T, E any] struct {
	inner Future[T, E]
}

func newCollapsed[T, E any](f Future[T, E]) collapsed[T, E] {
	return collapsed[T, E]{inner: f}
}

func (c *collapsed[T, E]) poll(tokens Tokens) (T, *PollError[E], bool) {
	return c.inner.Poll(tokens)
}

func (c *collapsed[T, E]) schedule(wake Wake) Tokens {
	return c.inner.Schedule(wake)
}

// collapse replaces inner with its Tailcall result, if any. Idempotent:
// once inner has no further Tailcall replacement, repeated calls no-op.
// Reports whether a replacement actually happened, so callers that need
// to hand the replacement to someone else (select's SelectNext) can tell
// a genuine swap apart from a no-op.
func (c *collapsed[T, E]) collapse() bool {
	if next, ok := c.inner.Tailcall(); ok {
		c.inner = next
		return true
	}
	return false
}

// take returns the current inner future, for combinators whose own
// Tailcall wants to hand it directly to the caller (e.g. then's Second
// stage, select's SelectNext).
func (c *collapsed[T, E]) take() Future[T, E] {
	return c.inner
}
