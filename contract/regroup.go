package contract

import "github.com/katalvlaran/mincut/comm"

// Tags for the point-to-point traffic of the group-halving primitives.
const (
	tagReassign = iota
	tagDuplicate
)

// Reassign redistributes the contracted matrix onto the first half workers of
// the group. The new striping uses rows2 = ⌈x/half⌉ rows per worker over a
// padded dimension rows2·half, where x is the current vertex count; because x
// shrinks by ~√2 while the worker count halves, each surviving worker's share
// grows (rows2 > rows).
//
// Every rank contributes its overlapping rows; ranks < half return the new
// slice, the rest return nil. Sends are buffered and never block, so the send
// and receive phases need no interleaving protocol.
func Reassign(c *comm.Comm, s *Slice, half int) (*Slice, error) {
	rank := c.Rank()
	x := s.Vertices()
	rows, size := s.Rows(), s.Size()
	rows2 := (x + half - 1) / half
	size2 := rows2 * half

	// Send phase: intersect my global row range with every receiver's range,
	// trimming columns to the new padded dimension. Rows at or past size2 are
	// all-zero padding and are not shipped.
	myLow := rank * rows
	myHigh := myLow + rows
	if myHigh > size2 {
		myHigh = size2
	}
	for dst := 0; dst < half; dst++ {
		low := max(myLow, dst*rows2)
		high := min(myHigh, (dst+1)*rows2)
		if low >= high {
			continue
		}
		buf := make([]int64, (high-low)*size2)
		for r := low; r < high; r++ {
			copy(buf[(r-low)*size2:(r-low+1)*size2], s.data[(r-myLow)*size:(r-myLow)*size+size2])
		}
		comm.Send(c, dst, tagReassign, buf)
	}

	if rank >= half {
		return nil, nil
	}

	// Receive phase: assemble my rows2 rows from the senders that held them,
	// in ascending sender order.
	data := make([]int64, rows2*size2)
	wantLow := rank * rows2
	wantHigh := min(wantLow+rows2, size2)
	for src := wantLow / rows; src*rows < wantHigh; src++ {
		low := max(wantLow, src*rows)
		high := min(wantHigh, (src+1)*rows)
		if low >= high {
			continue
		}
		buf := comm.Recv[[]int64](c, src, tagReassign)
		copy(data[(low-wantLow)*size2:], buf)
	}

	return NewSlice(x, rows2, rank, size2, data)
}

// duplicatePayload carries one slice copy from the surviving half to its
// mirror rank.
type duplicatePayload struct {
	Rows     int
	Vertices int
	Data     []int64
}

// Duplicate copies the surviving half's matrix onto the other half, rank i
// sending to rank i+half, then splits the communicator into two independent
// groups of size half. Both halves return their slice and new communicator;
// from here on they proceed without any synchronization until the final
// cross-trial reduction.
func Duplicate(c *comm.Comm, half int, s *Slice) (*Slice, *comm.Comm, error) {
	rank := c.Rank()

	if rank < half {
		data := make([]int64, len(s.data))
		copy(data, s.data)
		comm.Send(c, rank+half, tagDuplicate, duplicatePayload{
			Rows:     s.Rows(),
			Vertices: s.Vertices(),
			Data:     data,
		})
		sub := c.Split(0, 0)

		return s, sub, nil
	}

	payload := comm.Recv[duplicatePayload](c, rank-half, tagDuplicate)
	sub := c.Split(1, 0)
	mirror, err := NewSlice(payload.Vertices, payload.Rows, rank-half, payload.Rows*half, payload.Data)
	if err != nil {
		return nil, nil, err
	}

	return mirror, sub, nil
}
