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

// Package slot implements the single-occupant cell used by Promise/Complete
// to hand a value across goroutines exactly once. It is the external
// collaborator named (but not specified beyond its contract) in spec.md §6,
// built here on a mutex and callback lists in the same style as
// concurrent.Queue in this module's teacher repo.
package slot

import "sync"

// Token cancels a callback previously registered with OnFull or OnEmpty.
type Token uint64

// Slot is a single-occupant cell holding an optional V. Production
// (TryProduce) and consumption (TryConsume) are atomic with respect to
// each other and to callback delivery: a callback registered via OnFull or
// OnEmpty fires at most once, and fires inline if the slot is already in
// the state being waited for.
type Slot[V any] struct {
	mu       sync.Mutex
	full     bool
	value    V
	nextTok  Token
	onFull   map[Token]func(V)
	onEmpty  map[Token]func()
}

// New constructs a Slot, optionally pre-filled with initial.
func New[V any](initial *V) *Slot[V] {
	s := &Slot[V]{
		onFull:  make(map[Token]func(V)),
		onEmpty: make(map[Token]func()),
	}
	if initial != nil {
		s.full = true
		s.value = *initial
	}
	return s
}

// ErrFull is returned by TryProduce when the slot already holds a value.
type ErrFull[V any] struct{ Value V }

func (ErrFull[V]) Error() string { return "slot: full" }

// ErrEmpty is returned by TryConsume when the slot holds no value.
type ErrEmpty struct{}

func (ErrEmpty) Error() string { return "slot: empty" }

// TryProduce inserts v if the slot is empty, firing (and clearing) any
// registered OnFull callbacks. Returns ErrFull{v} if the slot was already
// occupied.
func (s *Slot[V]) TryProduce(v V) error {
	s.mu.Lock()
	if s.full {
		s.mu.Unlock()
		return ErrFull[V]{Value: v}
	}
	s.full = true
	s.value = v
	callbacks := s.drainOnFull()
	s.mu.Unlock()

	for _, cb := range callbacks {
		cb(v)
	}
	return nil
}

// TryConsume removes and returns the slot's value if present, firing any
// registered OnEmpty callbacks. Returns ErrEmpty{} if the slot was empty.
func (s *Slot[V]) TryConsume() (V, error) {
	s.mu.Lock()
	if !s.full {
		s.mu.Unlock()
		var zero V
		return zero, ErrEmpty{}
	}
	v := s.value
	var zero V
	s.value = zero
	s.full = false
	callbacks := s.drainOnEmpty()
	s.mu.Unlock()

	for _, cb := range callbacks {
		cb()
	}
	return v, nil
}

// OnFull registers cb to be invoked exactly once, with the slot's value,
// as soon as the slot becomes (or already is) full. Returns a Token that
// Cancel can use to revoke cb before it fires.
func (s *Slot[V]) OnFull(cb func(V)) Token {
	s.mu.Lock()
	if s.full {
		v := s.value
		s.mu.Unlock()
		cb(v)
		return 0
	}
	tok := s.allocToken()
	s.onFull[tok] = cb
	s.mu.Unlock()
	return tok
}

// OnEmpty registers cb to be invoked exactly once, as soon as the slot
// becomes (or already is) empty.
func (s *Slot[V]) OnEmpty(cb func()) Token {
	s.mu.Lock()
	if !s.full {
		s.mu.Unlock()
		cb()
		return 0
	}
	tok := s.allocToken()
	s.onEmpty[tok] = cb
	s.mu.Unlock()
	return tok
}

// Cancel revokes a callback registered via OnFull/OnEmpty if it has not
// yet fired. A no-op if it already fired or tok is the zero Token (which
// OnFull/OnEmpty return when they fired the callback inline).
func (s *Slot[V]) Cancel(tok Token) {
	if tok == 0 {
		return
	}
	s.mu.Lock()
	delete(s.onFull, tok)
	delete(s.onEmpty, tok)
	s.mu.Unlock()
}

func (s *Slot[V]) allocToken() Token {
	s.nextTok++
	return s.nextTok
}

func (s *Slot[V]) drainOnFull() []func(V) {
	if len(s.onFull) == 0 {
		return nil
	}
	cbs := make([]func(V), 0, len(s.onFull))
	for tok, cb := range s.onFull {
		cbs = append(cbs, cb)
		delete(s.onFull, tok)
	}
	return cbs
}

func (s *Slot[V]) drainOnEmpty() []func() {
	if len(s.onEmpty) == 0 {
		return nil
	}
	cbs := make([]func(), 0, len(s.onEmpty))
	for tok, cb := range s.onEmpty {
		cbs = append(cbs, cb)
		delete(s.onEmpty, tok)
	}
	return cbs
}
