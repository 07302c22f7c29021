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
	"errors"

	future "github.com/botobag/artemis-future"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// intoIntFuture is a minimal IntoFuture[int, error] implementation, used
// to exercise Flatten's T IntoFuture[U, E] constraint in tests.
type intoIntFuture struct {
	f future.Future[int, error]
}

func (i intoIntFuture) IntoFuture() future.Future[int, error] {
	return i.f
}

var _ = Describe("Flatten: collapse a future-of-a-future", func() {
	It("resolves with the inner future's value", func() {
		outer := future.Finished[intoIntFuture, error](intoIntFuture{f: future.Finished[int, error](9)})
		v, pollErr := future.BlockOn(future.Flatten[intoIntFuture, error, int](outer))
		Expect(pollErr).Should(BeNil())
		Expect(v).Should(Equal(9))
	})

	It("propagates an outer domain error without ever producing an inner future", func() {
		testErr := errors.New("outer failed")
		outer := future.Failed[intoIntFuture](testErr)
		_, pollErr := future.BlockOn(future.Flatten[intoIntFuture, error, int](outer))
		Expect(pollErr).ShouldNot(BeNil())
		Expect(pollErr.Other).Should(Equal(testErr))
	})

	It("propagates the inner future's domain error", func() {
		testErr := errors.New("inner failed")
		outer := future.Finished[intoIntFuture, error](intoIntFuture{f: future.Failed[int](testErr)})
		_, pollErr := future.BlockOn(future.Flatten[intoIntFuture, error, int](outer))
		Expect(pollErr).ShouldNot(BeNil())
		Expect(pollErr.Other).Should(Equal(testErr))
	})
})
