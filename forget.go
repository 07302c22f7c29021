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

// Spawner runs a task on some goroutine, the way concurrent.Executor's
// Submit runs a Task -- except a spawned task here is fire-and-forget:
// there's no TaskHandle, no cancellation, no result. Forget is the only
// caller this module has for it.
type Spawner interface {
	Spawn(task func())
}

// GoroutineSpawner is the trivial Spawner: every task gets its own
// goroutine, unbounded, with no pooling or queuing. Callers that need
// bounded concurrency should supply their own Spawner (e.g. one backed by
// a worker pool) rather than rely on this one.
type GoroutineSpawner struct{}

// Spawn implements Spawner.
func (GoroutineSpawner) Spawn(task func()) {
	go task()
}

// Forget drives f to completion on a goroutine obtained from spawner,
// discarding its result. Both a domain error and a Panicked result are
// silently dropped -- there's nowhere for them to go, by design, which is
// why Forget is named the way it is rather than e.g. Spawn.
func Forget[T, E any](spawner Spawner, f Future[T, E]) {
	spawner.Spawn(func() {
		BlockOn(f)
	})
}
