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

import "math/bits"

// wordBits is the number of distinct wake IDs one Tokens word can hold.
// TokenFromID maps larger IDs onto these bits modulo wordBits, so IDs that
// differ by a multiple of wordBits share a bit and MayContain reports them
// as overlapping.
const wordBits = 64

// Tokens is a conservatively-checked set of wake identifiers. It is the
// filter a driver passes to Future.Poll and the interest set a Future
// returns from Future.Schedule.
//
// Tokens is a value type: copy it freely, compare its observable behavior
// only through MayContain, never through equality of its internal bits.
type Tokens struct {
	// all, when true, means "the universe of all tokens"; bits is then
	// meaningless. AllTokens() is the only way to construct such a value.
	all  bool
	bits uint64
}

// AllTokens is the universal set: it may share a wake ID with any other set.
// Implementations must treat it as "no information" -- never skip poll work
// because tokens equal AllTokens.
func AllTokens() Tokens {
	return Tokens{all: true}
}

// TokenFromID returns the singleton set containing just id.
//
// id is taken modulo wordBits; callers that need more than wordBits distinct
// wake sources in one process should partition their own ID space rather
// than rely on collisions being harmless (they're merely conservative, per
// MayContain's contract, not cheap).
func TokenFromID(id uint64) Tokens {
	return Tokens{bits: 1 << (id % wordBits)}
}

// Union returns the set containing every token in t or in other.
func (t Tokens) Union(other Tokens) Tokens {
	if t.all || other.all {
		return AllTokens()
	}
	return Tokens{bits: t.bits | other.bits}
}

// Intersect returns the set containing only tokens present in both t and
// other.
func (t Tokens) Intersect(other Tokens) Tokens {
	if t.all {
		return other
	}
	if other.all {
		return t
	}
	return Tokens{bits: t.bits & other.bits}
}

// MayContain conservatively answers whether t and other might share a
// token. False positives are allowed; false negatives are not: if
// MayContain returns false, t and other are guaranteed disjoint.
func (t Tokens) MayContain(other Tokens) bool {
	if t.all || other.all {
		return true
	}
	return t.bits&other.bits != 0
}

// IsEmpty reports whether t contains no tokens at all (and is not the
// universal set).
func (t Tokens) IsEmpty() bool {
	return !t.all && t.bits == 0
}

// Len returns the number of distinct token IDs represented, or -1 for the
// universal set.
func (t Tokens) Len() int {
	if t.all {
		return -1
	}
	return bits.OnesCount64(t.bits)
}
