/*
Package vector implements a bounded, fixed-capacity vector.

It defines the type Vector, a contiguous container that keeps its elements in
insertion order, with methods for pushing, popping, indexing and iterating,
and the type Store, with methods for interacting with a collection of vectors.

A Vector is given its capacity at construction time and allocates its backing
storage exactly once; pushing, popping and iterating never allocate. Pushing
on a full vector or indexing an unoccupied position with At is treated as a
programming error and panics with an error wrapping ErrCapacityExceeded or
ErrOutOfBounds. Operations whose outcome legitimately depends on the current
content (Pop, Get, Last) report absence through an additional return value
instead.

A Vector can be encoded as an ordered sequence holding exactly its current
elements, either as JSON through the encoding/json interfaces or as a compact
byte encoding through the Bytes method and the NewFromBytes function. The
capacity is not part of either encoding: it is a property of the destination
type, and decoding into a vector of insufficient capacity fails with an error
wrapping ErrCapacityExceeded.

A Vector must not be mutated while an Iterator or a sequence returned by
Values or All is in use. More generally a Vector is not safe for concurrent
use: concurrent readers are fine, any concurrent write requires external
synchronization. A Store is essentially a wrapper around a map of vectors
that provides convenience methods safe to use from multiple goroutines.
*/
package vector
