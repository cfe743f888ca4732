// Package vector implements Vector[T], an owning, growable contiguous
// buffer with explicit capacity management, element shifting on
// insert/erase and an optional per-element destroyer.
//
// What:
//
//   - Size and capacity are tracked separately: slots [0, Size()) are live,
//     slots [Size(), Cap()) are allocated but unused and hold zero values.
//   - Push-triggered growth doubles the capacity (0 grows to 1). Reserve,
//     Resize and Assign grow to exactly the requested count. Every growth
//     replaces the whole buffer and copies only the live slots.
//   - Capacity never decreases except through ShrinkToFit and Free.
//   - A destroyer installed with WithDestroyer runs exactly once for every
//     element that leaves the vector: PopBack, Erase*, Resize shrink,
//     Clear, Assign*, Set/Fill overwrites and Free.
//
// Aliasing:
//
//	Data, View and Ptr return aliases into the owned buffer. Any operation
//	that grows or shrinks the buffer (PushBack, Insert*, Reserve, Resize,
//	Assign*, ShrinkToFit) may replace it; aliases taken before such a call
//	keep pointing at the old storage and must not be used to observe or
//	modify the vector afterwards. There is no generation tracking.
//
// Errors:
//
//   - ErrNegativeSize   a capacity or count argument is negative
//   - ErrEmpty          PopBack / Front / Back on an empty vector
//   - ErrOutOfRange     index outside the live range (or insert past Size())
//   - ErrInvalidRange   [start, end) not within [0, Size()] or start > end
//
//	Every operation validates its arguments before touching the buffer;
//	a returned error means nothing was modified.
//
// Lifetime:
//
//	Go has no scope-exit destructors. Pair construction with a deferred
//	Free (or Close) when a destroyer owns external resources:
//
//	    v, _ := vector.New[*os.File](0, vector.WithDestroyer(closeFile))
//	    defer v.Free()
//
// Concurrency:
//
//	Vector is not safe for concurrent use. A destroyer must not call back
//	into the vector it is attached to.
//
// Complexity:
//
//   - PushBack: amortised O(1)        - PopBack, At, Set, Front, Back: O(1)
//   - Insert*, Erase*: O(n - pos + k)  - Reserve, Resize, ShrinkToFit: O(n)
//   - Assign*: O(n + k)                - Sort: see package sorting
package vector
