package comm

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Sentinel errors for world construction and communicator management.
var (
	// ErrWorldSize indicates a non-positive worker count.
	ErrWorldSize = errors.New("comm: world size must be positive")

	// ErrRankOutOfRange indicates a rank outside [0, Size).
	ErrRankOutOfRange = errors.New("comm: rank out of range")
)

// message is one queued payload. The tag separates logically distinct streams
// between the same rank pair.
type message struct {
	tag     int
	payload any
}

// mailbox is an unbounded FIFO queue from one rank to another.
type mailbox struct {
	mu    sync.Mutex
	cond  *sync.Cond
	queue []message
}

func newMailbox() *mailbox {
	b := &mailbox{}
	b.cond = sync.NewCond(&b.mu)

	return b
}

func (b *mailbox) push(tag int, payload any) {
	b.mu.Lock()
	b.queue = append(b.queue, message{tag: tag, payload: payload})
	b.mu.Unlock()
	b.cond.Signal()
}

// pop removes and returns the first queued message carrying tag, blocking
// until one arrives. FIFO order holds per tag.
func (b *mailbox) pop(tag int) any {
	b.mu.Lock()
	defer b.mu.Unlock()

	for {
		for i := range b.queue {
			if b.queue[i].tag == tag {
				payload := b.queue[i].payload
				b.queue = append(b.queue[:i], b.queue[i+1:]...)

				return payload
			}
		}
		b.cond.Wait()
	}
}

// group is the shared infrastructure of one communicator: the mailbox mesh
// for a fixed member count. Every member's Comm points at the same group.
type group struct {
	id    string
	size  int
	boxes []*mailbox // boxes[src*size+dst]
}

func newGroup(id string, size int) *group {
	g := &group{id: id, size: size, boxes: make([]*mailbox, size*size)}
	for i := range g.boxes {
		g.boxes[i] = newMailbox()
	}

	return g
}

func (g *group) box(src, dst int) *mailbox { return g.boxes[src*g.size+dst] }

// World owns the communicator registry of one SPMD computation.
type World struct {
	mu     sync.Mutex
	groups map[string]*group
}

// intern returns the group registered under id, creating it on first access.
// All members of a split derive the same id, so the first arrival creates the
// mesh and the rest attach to it.
func (w *World) intern(id string, size int) *group {
	w.mu.Lock()
	defer w.mu.Unlock()

	if g, ok := w.groups[id]; ok {
		return g
	}
	g := newGroup(id, size)
	w.groups[id] = g

	return g
}

// Comm is one rank's endpoint into a communicator. A Comm is confined to the
// goroutine of its rank; it is not goroutine-safe.
type Comm struct {
	world    *World
	g        *group
	rank     int
	splitSeq int
	stats    *stats
}

// stats accumulates per-rank time spent inside collectives. It is shared by
// all communicators derived from one rank's world Comm.
type stats struct {
	collective time.Duration
}

// Run launches a world of p workers and invokes fn once per rank, each on its
// own goroutine. Run returns after every worker has returned, yielding the
// first non-nil error.
func Run(p int, fn func(c *Comm) error) error {
	if p <= 0 {
		return ErrWorldSize
	}

	w := &World{groups: make(map[string]*group)}
	g := w.intern("world", p)

	var eg errgroup.Group
	for rank := 0; rank < p; rank++ {
		c := &Comm{world: w, g: g, rank: rank, stats: &stats{}}
		eg.Go(func() error { return fn(c) })
	}

	return eg.Wait()
}

// Rank returns this worker's rank within the communicator, in [0, Size).
func (c *Comm) Rank() int { return c.rank }

// Size returns the number of members of the communicator.
func (c *Comm) Size() int { return c.g.size }

// CollectiveSeconds returns the total wall-clock time this rank has spent
// inside collectives across all communicators derived from its world Comm.
func (c *Comm) CollectiveSeconds() float64 { return c.stats.collective.Seconds() }

// track records d as time spent in collectives.
func (c *Comm) track(d time.Duration) { c.stats.collective += d }

// send enqueues payload for dst without blocking.
func (c *Comm) send(dst, tag int, payload any) {
	c.g.box(c.rank, dst).push(tag, payload)
}

// recv dequeues the next payload with the given tag from src, blocking until
// one arrives.
func (c *Comm) recv(src, tag int) any {
	return c.g.box(src, c.rank).pop(tag)
}

// splitMember describes one participant of a Split exchange.
type splitMember struct {
	Color, Key, Rank int
}

// Split partitions the communicator into sub-communicators by color and
// returns this rank's endpoint into its new group. Members of a color are
// ranked by (key, parent rank) ascending, so equal keys preserve the parent's
// relative order.
//
// Split is a collective: every member must call it, in the same program-order
// position. Members calling with distinct colors end up in disjoint groups
// that share no channels.
func (c *Comm) Split(color, key int) *Comm {
	seq := c.splitSeq
	c.splitSeq++

	all := Allgather(c, splitMember{Color: color, Key: key, Rank: c.rank})

	members := make([]splitMember, 0, len(all))
	for _, m := range all {
		if m.Color == color {
			members = append(members, m)
		}
	}
	sort.Slice(members, func(i, j int) bool {
		if members[i].Key != members[j].Key {
			return members[i].Key < members[j].Key
		}

		return members[i].Rank < members[j].Rank
	})

	newRank := 0
	for i, m := range members {
		if m.Rank == c.rank {
			newRank = i
			break
		}
	}

	id := fmt.Sprintf("%s/%d/%d", c.g.id, seq, color)
	sub := c.world.intern(id, len(members))

	return &Comm{world: c.world, g: sub, rank: newRank, stats: c.stats}
}
