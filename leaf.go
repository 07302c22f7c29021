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

// done is the leaf future returned by Done: immediately terminal with a
// pre-computed (value, error) pair.
type done[T, E any] struct {
	value    T
	err      *PollError[E]
	consumed bool
}

// Done creates a "leaf future" which resolves immediately with (value,
// err). err, if non-nil, becomes a PollErrorOther. Polling the returned
// future a second time yields a Panicked/ErrReused result.
func Done[T, E any](value T, err *E) Future[T, E] {
	d := &done[T, E]{value: value}
	if err != nil {
		d.err = otherError(*err)
	}
	return d
}

func (d *done[T, E]) Poll(Tokens) (T, *PollError[E], bool) {
	if d.consumed {
		var zero T
		return zero, reusedError[E](), true
	}
	d.consumed = true
	return d.value, d.err, true
}

func (d *done[T, E]) Schedule(wake Wake) Tokens {
	return scheduleReady(wake)
}

func (d *done[T, E]) Tailcall() (Future[T, E], bool) {
	return nil, false
}

// scheduleReady is the shared Schedule implementation for every
// immediately-ready leaf future: invoke wake once, synchronously, with
// AllTokens() -- this package's convention for "poll me now" -- then
// return AllTokens() as the interest set.
func scheduleReady(wake Wake) Tokens {
	if wake != nil {
		wake.Wake(AllTokens())
	}
	return AllTokens()
}

// Finished is sugar for Done(value, nil): a future that has already
// succeeded with value.
func Finished[T, E any](value T) Future[T, E] {
	return Done[T, E](value, nil)
}

// Failed is sugar for a future that has already failed with err.
func Failed[T, E any](err E) Future[T, E] {
	var zero T
	return Done[T, E](zero, &err)
}

// empty never completes: Poll always returns pending, and Schedule drops
// the waker it's given (it is never invoked, since nothing will ever make
// this future ready).
type empty[T, E any] struct{}

// Empty creates a future that never resolves. Useful as the losing side of
// a Select in tests, or as a placeholder pending branch.
func Empty[T, E any]() Future[T, E] {
	return empty[T, E]{}
}

func (empty[T, E]) Poll(Tokens) (T, *PollError[E], bool) {
	var zero T
	return zero, nil, false
}

func (empty[T, E]) Schedule(Wake) Tokens {
	return AllTokens()
}

func (empty[T, E]) Tailcall() (Future[T, E], bool) {
	return nil, false
}

// lazy defers invoking its producer function until the first Poll.
type lazy[T, E any] struct {
	fn   func() (T, *E)
	next *done[T, E]
}

// Lazy creates a future which, on first Poll, invokes fn (catching any
// panic and reporting it as Panicked) and thereafter behaves exactly like
// Done with fn's result.
func Lazy[T, E any](fn func() (T, *E)) Future[T, E] {
	return &lazy[T, E]{fn: fn}
}

func (l *lazy[T, E]) Poll(tokens Tokens) (T, *PollError[E], bool) {
	if l.next == nil {
		value, pollErr := recoverPoll(func() (T, *PollError[E]) {
			v, e := l.fn()
			l.fn = nil
			if e != nil {
				return v, otherError(*e)
			}
			return v, nil
		})
		l.next = &done[T, E]{value: value, err: pollErr}
	}
	return l.next.Poll(tokens)
}

func (l *lazy[T, E]) Schedule(wake Wake) Tokens {
	return scheduleReady(wake)
}

func (l *lazy[T, E]) Tailcall() (Future[T, E], bool) {
	return nil, false
}
