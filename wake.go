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

// A Wake is a handle used to signal that a Future previously polled to
// pending may now be able to make progress. Practically, it notifies a
// driver to place the associated task back on its queue of ready work.
//
// Implementations must be safe for concurrent use by multiple goroutines,
// and must not block: a Future may be completed on one goroutine while
// being driven on another.
type Wake interface {
	// Wake indicates that the events in tokens have occurred and any Future
	// whose Schedule-returned Tokens may contain them should be polled
	// again. Wake may be called spuriously; callers of Poll must cope with
	// a poll that finds nothing new.
	Wake(tokens Tokens)
}

// The WakerFunc type is an adapter to allow the use of ordinary functions as
// a Wake.
type WakerFunc func(tokens Tokens)

// Wake implements Wake, calling f(tokens).
func (f WakerFunc) Wake(tokens Tokens) {
	if f != nil {
		f(tokens)
	}
}

// nopWaker discards every wake notification. Useful as a placeholder Wake
// when a future is polled once and never scheduled.
type nopWaker struct{}

// Wake implements Wake and does nothing.
func (nopWaker) Wake(Tokens) {}

// NopWaker is a Wake that does nothing.
var NopWaker Wake = nopWaker{}
