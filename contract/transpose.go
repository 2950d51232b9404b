package contract

import "github.com/katalvlaran/mincut/comm"

// distributedTranspose transposes the row-striped matrix across the group:
// worker i's block of columns [j·rows, (j+1)·rows) travels to worker j, and
// each received rows×rows block is transposed locally. Returns the new
// row-major slice data; src is left untouched.
//
// Complexity: O(rows · size) local work, one all-to-all of rows² blocks.
func distributedTranspose(c *comm.Comm, src []int64, rows, size int) []int64 {
	p := c.Size()

	out := make([][]int64, p)
	for j := 0; j < p; j++ {
		block := make([]int64, rows*rows)
		for r := 0; r < rows; r++ {
			copy(block[r*rows:(r+1)*rows], src[r*size+j*rows:r*size+(j+1)*rows])
		}
		out[j] = block
	}

	in := comm.Alltoallv(c, out)

	dst := make([]int64, rows*size)
	for j := 0; j < p; j++ {
		block := in[j]
		// The block we received from j is j's rows × our columns; its
		// transpose is our rows × j's columns.
		for r := 0; r < rows; r++ {
			for col := 0; col < rows; col++ {
				dst[r*size+j*rows+col] = block[col*rows+r]
			}
		}
	}

	return dst
}
