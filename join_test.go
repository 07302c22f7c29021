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

var _ = Describe("Join: wait for two differently-typed futures", func() {
	It("resolves with both values once both finish", func() {
		a := future.Finished[int, error](1)
		b := future.Finished[string, error]("two")

		pair, pollErr := future.BlockOn(future.Join[int, string, error](a, b))
		Expect(pollErr).Should(BeNil())
		Expect(pair.First).Should(Equal(1))
		Expect(pair.Second).Should(Equal("two"))
	})

	It("waits for whichever side is still pending", func() {
		a := &notifyFuture{}
		b := future.Finished[int, error](2)

		f := future.Join[int, int, error](a, b)
		_, _, ready := f.Poll(future.AllTokens())
		Expect(ready).Should(BeFalse())

		a.Complete(1)
		pair, pollErr, ready := f.Poll(future.AllTokens())
		Expect(ready).Should(BeTrue())
		Expect(pollErr).Should(BeNil())
		Expect(pair.First).Should(Equal(1))
		Expect(pair.Second).Should(Equal(2))
	})

	It("fails immediately and drops the other side when one fails", func() {
		testErr := errors.New("join saw this")
		a := future.Failed[int](testErr)
		b := future.Empty[int, error]()

		_, pollErr := future.BlockOn(future.Join[int, int, error](a, b))
		Expect(pollErr).ShouldNot(BeNil())
		Expect(pollErr.Other).Should(Equal(testErr))
	})
})

var _ = Describe("JoinAll: wait for a variable number of same-typed futures", func() {
	It("resolves with an empty slice for no inputs", func() {
		v, pollErr := future.BlockOn(future.JoinAll[int, error]())
		Expect(pollErr).Should(BeNil())
		Expect(v).Should(BeEmpty())
	})

	It("collects values in order", func() {
		v, pollErr := future.BlockOn(future.JoinAll[int, error](
			future.Finished[int, error](1),
			future.Finished[int, error](2),
			future.Finished[int, error](3),
		))
		Expect(pollErr).Should(BeNil())
		Expect(v).Should(Equal([]int{1, 2, 3}))
	})

	It("fails as soon as any input fails", func() {
		testErr := errors.New("joinall saw this")
		_, pollErr := future.BlockOn(future.JoinAll[int, error](
			future.Finished[int, error](1),
			future.Failed[int](testErr),
			future.Empty[int, error](),
		))
		Expect(pollErr).ShouldNot(BeNil())
		Expect(pollErr.Other).Should(Equal(testErr))
	})
})
