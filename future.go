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

// Package future provides a composable asynchronous-computation core: a
// uniform Future[T, E] abstraction driven by cooperative polling, a
// token-filtered wakeup mechanism, a one-shot Promise/Complete hand-off,
// and a combinator algebra (Map, MapErr, Then, AndThen, OrElse, Select,
// Join, Flatten) that chains futures together without callback inversion.
//
// The design is borrowed from the early Rust `futures` crate and from this
// package's own predecessor, github.com/botobag/artemis's
// concurrent/future package. A Future is single-shot: once Poll has
// returned a terminal result, polling it again is a contract violation
// (reported back as a Panicked error rather than a second real result).
//
// T and E must be safe to use from multiple goroutines: a Future may be
// completed by one goroutine (e.g. a Complete invoked elsewhere) while
// being polled by another.
package future

// A Future represents an asynchronous computation that will eventually
// produce either a value of type T or fail with an error of type E.
//
// Futures alone are inert: they must be actively polled to make progress.
// Poll is not meant to be called in a tight loop; instead a driver should
// call Schedule to register a Wake, and re-poll only once that Wake fires.
//
// Generic combinators that need to introduce a new type parameter (Map,
// Then, Join, ...) are free functions rather than methods, since Go
// methods cannot themselves be generic over additional type parameters.
type Future[T, E any] interface {
	// Poll attempts to resolve the future to a final value, registering no
	// callback itself -- that's Schedule's job. tokens is a filter: a hint
	// that only wake events intersecting tokens may have occurred since
	// the last call. Implementations MUST treat AllTokens() as "no
	// information" and must not skip work because of it.
	//
	// Returns (result, err, true) exactly once, when the future resolves
	// (err is non-nil on failure, nil on success). Returns (_, _, false)
	// while pending. Once true has been returned, Poll must not be called
	// again; violators receive a Panicked/ErrReused result.
	Poll(tokens Tokens) (T, *PollError[E], bool)

	// Schedule arranges for wake to be invoked when this future may have
	// made progress, and returns the set of wake tokens this future is
	// interested in. Re-registration (a second call to Schedule) replaces
	// any previously registered wake; only the most recent is guaranteed
	// to fire. Schedule must not block and must not call wake
	// synchronously except for futures that are already resolved or
	// trivially always-ready (see leaf.go), where invoking wake
	// synchronously with AllTokens() is this package's convention for
	// "poll me now".
	Schedule(wake Wake) Tokens

	// Tailcall requests structural compaction after an unproductive Poll.
	// If this future is now just forwarding to a follow-up future (e.g.
	// because its own first stage finished), it returns that follow-up and
	// true; the caller abandons the original and uses the replacement
	// instead. Otherwise returns (_, false).
	//
	// Tailcall must be idempotent and must not drive computation: calling
	// it twice in a row must yield the same observable state (P6).
	Tailcall() (Future[T, E], bool)
}

// IntoFuture is implemented by types that can be converted into a
// Future[T, E]. It mirrors Rust's IntoFuture trait and is what the
// continuations of Then/AndThen/OrElse return. A Future does not implement
// it by itself; wrap one with AsIntoFuture.
type IntoFuture[T, E any] interface {
	IntoFuture() Future[T, E]
}

// futureSelf lets any Future[T, E] satisfy IntoFuture[T, E] trivially,
// mirroring the Rust source's blanket `impl<F: Future<T,E>> IntoFuture<T,E>
// for F`. Wrap a bare Future with AsIntoFuture to use it where an
// IntoFuture is expected.
type futureSelf[T, E any] struct {
	f Future[T, E]
}

func (s futureSelf[T, E]) IntoFuture() Future[T, E] { return s.f }

// AsIntoFuture adapts any Future[T, E] to IntoFuture[T, E].
func AsIntoFuture[T, E any](f Future[T, E]) IntoFuture[T, E] {
	return futureSelf[T, E]{f: f}
}

// Boxed returns f unchanged. Go interface values are already reference
// handles (unlike Rust, which needs an explicit heap box to erase a
// future's concrete type for trait-object use), so no allocation or
// wrapping is required; Boxed exists only so call sites translated from
// the Rust API (`f.boxed()`) have a direct equivalent.
func Boxed[T, E any](f Future[T, E]) Future[T, E] {
	return f
}
