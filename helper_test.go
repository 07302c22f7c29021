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

package future_test

import (
	future "github.com/botobag/artemis-future"
)

// notifyFuture is this module's analog of concurrent/future/join_test.go's
// completeOnNotify: a future that stays pending until Complete or Fail is
// called, used to test how combinators treat an inner future that resolves
// only after an earlier pending poll, independent of timing.
type notifyFuture struct {
	value     int
	err       error
	completed bool
	isErr     bool
	polled    bool
}

func (f *notifyFuture) Poll(future.Tokens) (int, *future.PollError[error], bool) {
	if !f.completed {
		return 0, nil, false
	}
	f.polled = true
	if f.isErr {
		e := f.err
		return 0, &future.PollError[error]{Kind: future.PollErrorOther, Other: e}, true
	}
	return f.value, nil, true
}

func (f *notifyFuture) Schedule(wake future.Wake) future.Tokens {
	return future.AllTokens()
}

func (f *notifyFuture) Tailcall() (future.Future[int, error], bool) {
	return nil, false
}

func (f *notifyFuture) Complete(value int) {
	f.completed = true
	f.value = value
}

func (f *notifyFuture) Fail(err error) {
	f.completed = true
	f.isErr = true
	f.err = err
}
