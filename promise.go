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
	"runtime"
	"sync/atomic"

	"github.com/botobag/artemis-future/internal/slot"
)

// promiseTokenCounter is the process-wide monotonic counter that hands out
// each Promise's wake token, mirroring the Rust source's
// `static COUNT: AtomicUsize` inside `promise()` (spec.md §9: "Represent as
// module-level initialized-once state with atomic increment; lifetime is
// program lifetime.").
var promiseTokenCounter uint64

// promiseResult is the value produced into a Promise's Slot: Some(Ok(v)),
// Some(Err(e)), or -- once Canceled is true -- the Rust source's None
// (completer dropped without completing).
type promiseResult[T, E any] struct {
	canceled bool
	value    T
	err      E
	isErr    bool
}

// promiseInner is the state shared between a Promise and its paired
// Complete: a Slot for the one-shot hand-off, a pendingWake flag
// coordinating registration against production, and the wake token.
type promiseInner[T, E any] struct {
	slot        *slot.Slot[promiseResult[T, E]]
	pendingWake atomic.Bool
	token       uint64
}

// Promise is the polled half of a promise/complete pair: a Future that
// resolves when the paired Complete is finished, failed, or dropped.
type Promise[T, E any] struct {
	inner       *promiseInner[T, E]
	cancelToken slot.Token
	used        bool
}

// Complete is the completion half of a promise/complete pair. Exactly one
// of Finish, Fail, or Cancel must eventually be called; if none is (and
// Complete is simply discarded), a best-effort finalizer cancels the
// paired Promise, but programs should not rely on GC timing for this --
// call Cancel explicitly when abandoning a Complete early.
//
// Complete is a handle with identity: always held and passed as
// *Complete[T, E], never copied by value, so the finalizer that backs its
// drop-cancels-the-promise semantics tracks the one object the caller
// actually holds.
type Complete[T, E any] struct {
	inner     *promiseInner[T, E]
	completed atomic.Bool
}

// NewPromise creates a new in-memory promise: a (Promise, Complete) pair
// sharing state used to complete a computation from one location with a
// Future representing it elsewhere. Each half may be passed to, and used
// from, a different goroutine.
func NewPromise[T, E any]() (*Promise[T, E], *Complete[T, E]) {
	inner := &promiseInner[T, E]{
		slot:  slot.New[promiseResult[T, E]](nil),
		token: atomic.AddUint64(&promiseTokenCounter, 1) - 1,
	}

	c := &Complete[T, E]{inner: inner}
	runtime.SetFinalizer(c, (*Complete[T, E]).cancelIfIncomplete)

	return &Promise[T, E]{inner: inner}, c
}

// Finish completes the promise successfully with value.
func (c *Complete[T, E]) Finish(value T) {
	c.complete(promiseResult[T, E]{value: value})
}

// Fail completes the promise with a domain error.
func (c *Complete[T, E]) Fail(err E) {
	c.complete(promiseResult[T, E]{err: err, isErr: true})
}

// Cancel abandons the promise without a result, causing the paired Promise
// to resolve as Panicked(ErrCanceled). Equivalent to letting a Rust
// Complete drop without finishing.
func (c *Complete[T, E]) Cancel() {
	c.complete(promiseResult[T, E]{canceled: true})
}

func (c *Complete[T, E]) cancelIfIncomplete() {
	if c.completed.CompareAndSwap(false, true) {
		c.produce(promiseResult[T, E]{canceled: true})
	}
}

func (c *Complete[T, E]) complete(r promiseResult[T, E]) {
	if !c.completed.CompareAndSwap(false, true) {
		return
	}
	runtime.SetFinalizer(c, nil)
	c.produce(r)
}

// produce mirrors promise.rs's Complete::complete: try to insert directly,
// and if the slot is (unexpectedly) already occupied, queue the insert via
// OnEmpty so it lands as soon as the prior value is consumed.
func (c *Complete[T, E]) produce(r promiseResult[T, E]) {
	if err := c.inner.slot.TryProduce(r); err != nil {
		c.inner.slot.OnEmpty(func() {
			_ = c.inner.slot.TryProduce(r)
		})
	}
}

// Poll implements Future. It short-circuits to pending while pendingWake is
// set (a slot callback is armed but hasn't yet observed fullness, per
// spec.md §4.4's torn-read prevention); otherwise it consumes the slot.
func (p *Promise[T, E]) Poll(Tokens) (T, *PollError[E], bool) {
	var zero T
	if p.inner.pendingWake.Load() {
		return zero, nil, false
	}

	r, err := p.inner.slot.TryConsume()
	if err != nil {
		if p.used {
			return zero, reusedError[E](), true
		}
		return zero, nil, false
	}

	p.used = true
	switch {
	case r.canceled:
		return zero, panicError[E](ErrCanceled), true
	case r.isErr:
		return zero, otherError(r.err), true
	default:
		return r.value, nil, true
	}
}

// Schedule implements Future.
func (p *Promise[T, E]) Schedule(wake Wake) Tokens {
	tokens := TokenFromID(p.inner.token)
	if p.used {
		return scheduleReady(wake)
	}

	if p.inner.pendingWake.Load() {
		if p.cancelToken != 0 {
			p.inner.slot.Cancel(p.cancelToken)
		}
	}
	p.inner.pendingWake.Store(true)

	inner := p.inner
	p.cancelToken = p.inner.slot.OnFull(func(promiseResult[T, E]) {
		inner.pendingWake.Store(false)
		wake.Wake(tokens)
	})
	return tokens
}

// Tailcall implements Future: a Promise never collapses into a different
// future.
func (p *Promise[T, E]) Tailcall() (Future[T, E], bool) {
	return nil, false
}
