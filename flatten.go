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

// flattenFuture is the Future returned by Flatten. It is equivalent to
// Then(inner, func(o) { return o }) -- spec.md §4.5 -- but, as in the Rust
// source, implemented directly rather than built on Then to avoid an
// extra wrapper layer in the combinator chain.
type flattenFuture[T IntoFuture[U, E], E, U any] struct {
	first  *collapsed[T, E]
	second *collapsed[U, E]
	done   bool
}

// Flatten collapses a future whose success value T is itself convertible
// to a Future[U, E] into a single Future[U, E].
func Flatten[T IntoFuture[U, E], E, U any](inner Future[T, E]) Future[U, E] {
	c := newCollapsed(inner)
	return &flattenFuture[T, E, U]{first: &c}
}

func (f *flattenFuture[T, E, U]) Poll(tokens Tokens) (U, *PollError[E], bool) {
	var zero U
	if f.done {
		return zero, reusedError[E](), true
	}

	if f.second != nil {
		v, pollErr, ready := f.second.poll(tokens)
		if ready {
			f.done = true
		}
		return v, pollErr, ready
	}

	v, pollErr, ready := f.first.poll(tokens)
	if !ready {
		return zero, nil, false
	}
	f.first = nil

	if pollErr != nil {
		f.done = true
		return zero, pollErr, true
	}

	next, synthesized := recoverPoll(func() (Future[U, E], *PollError[E]) {
		return v.IntoFuture(), nil
	})
	if synthesized != nil {
		f.done = true
		return zero, synthesized, true
	}

	c := newCollapsed(next)
	f.second = &c
	v2, pollErr2, ready2 := f.second.poll(tokens)
	if ready2 {
		f.done = true
	}
	return v2, pollErr2, ready2
}

func (f *flattenFuture[T, E, U]) Schedule(wake Wake) Tokens {
	if f.second != nil {
		return f.second.schedule(wake)
	}
	return f.first.schedule(wake)
}

func (f *flattenFuture[T, E, U]) Tailcall() (Future[U, E], bool) {
	if f.second != nil {
		f.second.collapse()
		return f.second.take(), true
	}
	if f.first != nil {
		f.first.collapse()
	}
	return nil, false
}
