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
	"time"

	future "github.com/botobag/artemis-future"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Promise/Complete: one-shot cross-goroutine hand-off", func() {
	It("resolves the promise once Complete.Finish is called from another goroutine", func() {
		p, c := future.NewPromise[int, error]()

		go func() {
			time.Sleep(10 * time.Millisecond)
			c.Finish(99)
		}()

		v, pollErr := future.BlockOn[int, error](p)
		Expect(pollErr).Should(BeNil())
		Expect(v).Should(Equal(99))
	})

	It("resolves with a domain error when Complete.Fail is called", func() {
		p, c := future.NewPromise[int, error]()
		testErr := errors.New("promise failed")

		go func() {
			time.Sleep(10 * time.Millisecond)
			c.Fail(testErr)
		}()

		_, pollErr := future.BlockOn[int, error](p)
		Expect(pollErr).ShouldNot(BeNil())
		Expect(pollErr.Kind).Should(Equal(future.PollErrorOther))
		Expect(pollErr.Other).Should(Equal(testErr))
	})

	It("resolves as Panicked(ErrCanceled) when Complete.Cancel is called", func() {
		p, c := future.NewPromise[int, error]()

		go func() {
			time.Sleep(10 * time.Millisecond)
			c.Cancel()
		}()

		_, pollErr := future.BlockOn[int, error](p)
		Expect(pollErr).ShouldNot(BeNil())
		Expect(pollErr.Kind).Should(Equal(future.PollErrorPanicked))
		Expect(errors.Is(pollErr, future.ErrCanceled)).Should(BeTrue())
	})

	It("reports ErrReused when polled again after resolving", func() {
		p, c := future.NewPromise[int, error]()
		c.Finish(1)

		_, _, ready := p.Poll(future.AllTokens())
		Expect(ready).Should(BeTrue())

		_, pollErr, ready := p.Poll(future.AllTokens())
		Expect(ready).Should(BeTrue())
		Expect(errors.Is(pollErr, future.ErrReused)).Should(BeTrue())
	})

	It("ignores a second Finish/Fail/Cancel after the first completion wins", func() {
		p, c := future.NewPromise[int, error]()
		c.Finish(1)
		c.Finish(2)
		c.Cancel()

		v, pollErr := future.BlockOn[int, error](p)
		Expect(pollErr).Should(BeNil())
		Expect(v).Should(Equal(1))
	})
})
