// Package scheduler orders tasks that declare prerequisite dependencies.
//
// # How It Works
//
// Schedule runs a priority-guided variant of Kahn's algorithm:
//  1. Build the topology once: a map from ID to task, an edge d -> t for
//     every dependency d declared by t, and t's indegree.
//  2. Seed a min-heap frontier with every task whose indegree is zero. The
//     heap orders by priority (absent priority last) and then by task ID in
//     natural order, so identical input always yields the identical order.
//  3. Pop the minimum, emit it, and decrement the indegree of each task that
//     depends on it, pushing those that reach zero.
//  4. When the frontier is drained, any task that was not emitted sits on or
//     behind a cycle. A *CycleError naming those tasks is returned; a partial
//     order is never returned.
//
// A task that depends on itself is a cycle of length one and is reported the
// same way.
//
// # Unknown Dependencies
//
// A dependency on an ID that is not part of the input is rejected with an
// error wrapping ErrUnknownDependency. It is never treated as satisfied.
//
// Schedule is a pure function over its input. It does not modify the tasks it
// is given and keeps no state between calls, so concurrent calls need no
// coordination.
package scheduler
