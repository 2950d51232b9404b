// Package comm provides the single-program-multiple-data process-group
// abstraction the distributed cut algorithms are written against: a fixed set
// of worker ranks exchanging messages through collectives.
//
// A world of p workers is launched with Run; each worker receives a *Comm
// bound to its rank. Collectives (Bcast, Gather, Gatherv, Scatter, Allgather,
// Alltoallv, Reduce, Allreduce, Barrier) are generic package functions so that
// payload types are checked at compile time. Point-to-point Send/Recv exist
// for the few redistribution steps that collectives do not cover; Send never
// blocks (mailboxes are unbounded), Recv blocks until a matching message
// arrives.
//
// Split carves a communicator into disjoint sub-communicators by color, with
// ranks ordered by (key, parent rank). Split relies on SPMD discipline: all
// members of a communicator must call the same sequence of Split operations
// in the same program order.
//
// Ownership and aliasing:
//
//   - A sent payload is handed over to the receiver; the sender must not
//     mutate it afterwards.
//   - Broadcast hands the same backing array to every member; receivers must
//     treat broadcast payloads as read-only.
//
// Ordering: mailboxes are FIFO per (sender, receiver, tag), and collectives
// gather in ascending rank order, so between collectives all members observe
// the program order of the root's decisions.
//
// Failure semantics: there is no tolerance for worker failure; a worker that
// returns an error causes Run to return that error once the remaining workers
// finish or block forever (callers abort the whole computation). A payload
// type mismatch between matched Send/Recv pairs is a logic fault and panics.
//
// Each Comm additionally accounts the wall-clock time its rank spends inside
// collectives, mirroring the usual message-passing time accounting of SPMD
// benchmarks; see CollectiveSeconds.
package comm
