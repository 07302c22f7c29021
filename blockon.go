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

// blockingWake parks a driver goroutine until the future it's watching
// has something new to report. A buffered channel of size 1 is enough:
// Wake may be called from whatever goroutine eventually completes the
// future, possibly before BlockOn gets around to receiving.
type blockingWake struct {
	ch chan struct{}
}

func newBlockingWake() *blockingWake {
	return &blockingWake{ch: make(chan struct{}, 1)}
}

func (w *blockingWake) Wake(tokens Tokens) {
	select {
	case w.ch <- struct{}{}:
	default:
	}
}

func (w *blockingWake) park() {
	<-w.ch
}

// BlockOn drives f to completion on the calling goroutine, parking
// whenever f isn't ready rather than busy-polling. It's the simplest
// possible driver -- no executor, no reactor -- suitable for tests and
// for Forget's background goroutine.
func BlockOn[T, E any](f Future[T, E]) (T, *PollError[E]) {
	cur := f
	wake := newBlockingWake()

	for {
		if next, ok := cur.Tailcall(); ok {
			cur = next
		}

		v, pollErr, ready := cur.Poll(AllTokens())
		if ready {
			return v, pollErr
		}

		cur.Schedule(wake)
		wake.park()
	}
}
