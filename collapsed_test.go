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

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Tailcall collapse of long combinator chains", func() {
	It("resolves correctly no matter how many wrapper layers were chained", func() {
		f := future.Finished[int, error](0)
		for i := 0; i < 500; i++ {
			n := i
			f = future.Map[int, error](f, func(v int) int {
				return v + n
			})
		}

		v, pollErr := future.BlockOn(f)
		Expect(pollErr).Should(BeNil())

		sum := 0
		for i := 0; i < 500; i++ {
			sum += i
		}
		Expect(v).Should(Equal(sum))
	})

	It("is idempotent once the wrapped future has no further tailcall", func() {
		f := future.Then[int, error, int, error](future.Finished[int, error](1), func(o future.Outcome[int, error]) future.IntoFuture[int, error] {
			return future.AsIntoFuture[int, error](future.Finished[int, error](o.Value))
		})

		_, first := f.Tailcall()
		_, second := f.Tailcall()
		Expect(first).Should(Equal(second))
	})
})
