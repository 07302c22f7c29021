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

// Outcome stands in for Rust's Result<T, E> at the one place this library
// needs to hand a domain-level success-or-failure pair to a closure: Then's
// continuation. It never appears in a Poll signature -- Panicked errors
// never reach a Then closure at all (spec.md §7: Panicked always
// propagates unchanged), so there's no third case to represent here.
type Outcome[T, E any] struct {
	Value T
	Err   E
	IsErr bool
}

// Ok builds a successful Outcome.
func Ok[T, E any](value T) Outcome[T, E] {
	return Outcome[T, E]{Value: value}
}

// Err builds a failed Outcome.
func Err[T, E any](err E) Outcome[T, E] {
	return Outcome[T, E]{Err: err, IsErr: true}
}
