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

var _ = Describe("Select: race two futures", func() {
	It("resolves with the winner's value and a Next for the loser", func() {
		winner := future.Finished[int, error](1)
		loser := future.Empty[int, error]()

		sv, pollErr := future.BlockOn(future.Select[int, error](winner, loser))
		Expect(pollErr).Should(BeNil())
		Expect(sv.Value).Should(Equal(1))
		Expect(sv.Next).ShouldNot(BeNil())

		// The loser never resolves, so driving Next further just stays pending.
		_, _, ready := sv.Next.Poll(future.AllTokens())
		Expect(ready).Should(BeFalse())
	})

	It("resolves with whichever side is already ready when both are", func() {
		a := future.Finished[int, error](1)
		b := future.Finished[int, error](2)

		sv, pollErr := future.BlockOn(future.Select[int, error](a, b))
		Expect(pollErr).Should(BeNil())
		// a is polled first per the select.rs precedence: it wins ties.
		Expect(sv.Value).Should(Equal(1))
	})

	It("carries the loser alongside a domain error from the winner", func() {
		testErr := errors.New("winner failed")
		winner := future.Failed[int](testErr)
		loser := future.Empty[int, error]()

		_, pollErr := future.BlockOn(future.Select[int, error](winner, loser))
		Expect(pollErr).ShouldNot(BeNil())
		Expect(pollErr.Kind).Should(Equal(future.PollErrorOther))
		Expect(pollErr.Other.Err).Should(Equal(testErr))
		Expect(pollErr.Other.Next).ShouldNot(BeNil())
	})

	It("does not attach the loser when the winner panics", func() {
		winner := future.Map[int, error](future.Finished[int, error](1), func(int) int {
			panic("select panic")
		})
		loser := future.Empty[int, error]()

		_, pollErr := future.BlockOn(future.Select[int, error](winner, loser))
		Expect(pollErr).ShouldNot(BeNil())
		Expect(pollErr.Kind).Should(Equal(future.PollErrorPanicked))
		Expect(pollErr.Panic).Should(Equal("select panic"))
	})

	It("reports ErrReused when polled a second time", func() {
		f := future.Select[int, error](future.Finished[int, error](1), future.Empty[int, error]())
		_, _, ready := f.Poll(future.AllTokens())
		Expect(ready).Should(BeTrue())

		_, pollErr, ready := f.Poll(future.AllTokens())
		Expect(ready).Should(BeTrue())
		Expect(errors.Is(pollErr, future.ErrReused)).Should(BeTrue())
	})
})
