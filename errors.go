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

import (
	"errors"
	"fmt"
)

// Error values carried by a PollError's Panic field to identify the cause
// of an abort that isn't a user-level panic.
var (
	// ErrCanceled is the cause reported to a Promise whose paired Complete
	// was dropped (garbage collected, or explicitly discarded) without
	// calling Finish or Fail.
	ErrCanceled = errors.New("future: promise canceled (completer dropped without completing)")

	// ErrReused is the cause reported when a Future is polled again after
	// it has already produced a terminal result.
	ErrReused = errors.New("future: polled again after already producing a result")
)

// PollErrorKind distinguishes a Future's two failure modes: a normal
// domain-level error, or an abort.
type PollErrorKind int

const (
	// PollErrorOther indicates the computation failed normally, with a
	// value of the future's declared error type E.
	PollErrorOther PollErrorKind = iota
	// PollErrorPanicked indicates the computation aborted: a closure
	// panicked, a promise was dropped uncompleted, or a future was polled
	// after it already produced a terminal result.
	PollErrorPanicked
)

// String returns a human-readable name for k.
func (k PollErrorKind) String() string {
	switch k {
	case PollErrorOther:
		return "other"
	case PollErrorPanicked:
		return "panicked"
	default:
		return "unknown"
	}
}

// PollError is the error half of a PollResult. It is always one of two
// kinds: Other (a domain failure of type E) or Panicked (an abort, whose
// Panic field carries an opaque payload describing the abort cause).
//
// Panicked always propagates unchanged through every combinator -- even
// OrElse, which otherwise intercepts Other errors.
type PollError[E any] struct {
	Kind PollErrorKind
	// Other holds the domain error when Kind == PollErrorOther.
	Other E
	// Panic holds the abort payload when Kind == PollErrorPanicked. It is
	// typically ErrCanceled, ErrReused, or a recovered panic value.
	Panic any
}

// Error implements the error interface.
func (e *PollError[E]) Error() string {
	switch e.Kind {
	case PollErrorPanicked:
		return fmt.Sprintf("future: panicked: %v", e.Panic)
	default:
		return fmt.Sprintf("future: %v", e.Other)
	}
}

// Unwrap lets errors.Is/errors.As reach the panic cause (e.g. ErrCanceled,
// ErrReused) for a Panicked error.
func (e *PollError[E]) Unwrap() error {
	if e.Kind != PollErrorPanicked {
		return nil
	}
	if err, ok := e.Panic.(error); ok {
		return err
	}
	return nil
}

// otherError builds a PollError carrying a domain failure.
func otherError[E any](e E) *PollError[E] {
	return &PollError[E]{Kind: PollErrorOther, Other: e}
}

// panicError builds a PollError carrying an abort payload.
func panicError[E any](payload any) *PollError[E] {
	return &PollError[E]{Kind: PollErrorPanicked, Panic: payload}
}

// reusedError is the PollError returned to a future polled again after a
// terminal result (I1/P1).
func reusedError[E any]() *PollError[E] {
	return panicError[E](ErrReused)
}

// recoverPoll runs fn and converts any panic into a Panicked PollError,
// per spec.md §7: "A Panicked from the user's closure is synthesized by
// catching the panic at the combinator boundary."
func recoverPoll[T, E any](fn func() (T, *PollError[E])) (result T, pollErr *PollError[E]) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			result = zero
			pollErr = panicError[E](r)
		}
	}()
	return fn()
}
