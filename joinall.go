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

// joinAllFuture generalizes concurrent/future/join.go's join to an
// arbitrary number of same-typed futures with this module's typed error
// channel, in place of that source's []interface{} slots and bare error
// return. Like joinFuture, it short-circuits and drops every still-
// running input the instant one of them fails.
type joinAllFuture[T, E any] struct {
	inputs   []Future[T, E]
	values   []T
	done     []bool
	finished bool
}

// JoinAll waits for every future in fs, resolving with their values in
// the same order once all have finished. If any fails, JoinAll resolves
// with that error immediately and drops the remaining futures.
//
// This supplements the distilled spec's binary Join with the teacher's
// variadic form (concurrent/future/join.go's Join(f ...Future) Future).
func JoinAll[T, E any](fs ...Future[T, E]) Future[[]T, E] {
	inputs := make([]Future[T, E], len(fs))
	copy(inputs, fs)
	return &joinAllFuture[T, E]{
		inputs: inputs,
		values: make([]T, len(fs)),
		done:   make([]bool, len(fs)),
	}
}

func (j *joinAllFuture[T, E]) Poll(tokens Tokens) ([]T, *PollError[E], bool) {
	if j.finished {
		return nil, reusedError[E](), true
	}

	allDone := true
	for i, input := range j.inputs {
		if j.done[i] || input == nil {
			continue
		}

		v, pollErr, ready := input.Poll(tokens)
		if !ready {
			allDone = false
			continue
		}
		if pollErr != nil {
			for k := range j.inputs {
				j.inputs[k] = nil
			}
			j.finished = true
			return nil, pollErr, true
		}
		j.values[i], j.done[i], j.inputs[i] = v, true, nil
	}

	if !allDone {
		return nil, nil, false
	}
	j.finished = true
	return j.values, nil, true
}

func (j *joinAllFuture[T, E]) Schedule(wake Wake) Tokens {
	if j.finished {
		return scheduleReady(wake)
	}
	tokens := Tokens{}
	for i, input := range j.inputs {
		if j.done[i] || input == nil {
			continue
		}
		tokens = tokens.Union(input.Schedule(wake))
	}
	return tokens
}

// Tailcall collapses every still-running input in place; JoinAll can hold
// arbitrarily many children, so it never collapses to a single successor.
func (j *joinAllFuture[T, E]) Tailcall() (Future[[]T, E], bool) {
	if j.finished {
		return nil, false
	}
	for i, input := range j.inputs {
		if j.done[i] || input == nil {
			continue
		}
		c := newCollapsed(input)
		c.collapse()
		j.inputs[i] = c.take()
	}
	return nil, false
}
