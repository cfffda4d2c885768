package model

// PaddedGrid is a copy of a board surrounded by one ring of border cells,
// so neighbor counting never has to bounds check
type PaddedGrid struct {
	rows  int // real board rows
	cols  int // real board cols
	width int // cols + 2
	cells []bool
}

func newPaddedGrid(rows, cols int) *PaddedGrid {
	p := &PaddedGrid{}
	p.reset(rows, cols)
	return p
}

// reset sizes the grid for a rows x cols board and kills every cell
func (p *PaddedGrid) reset(rows, cols int) {
	size := (rows + 2) * (cols + 2)
	if cap(p.cells) < size {
		p.cells = make([]bool, size)
	} else {
		p.cells = p.cells[:size]
		clear(p.cells)
	}
	p.rows = rows
	p.cols = cols
	p.width = cols + 2
}

func (p *PaddedGrid) row(r int) []bool {
	return p.cells[r*p.width : (r+1)*p.width]
}

func (p *PaddedGrid) set(r, c int, alive bool) {
	p.cells[r*p.width+c] = alive
}

// At returns a cell in padded coordinates, (0,0) being the top-left border cell
func (p *PaddedGrid) At(r, c int) bool {
	return p.cells[r*p.width+c]
}

// Interior returns the snapshot's copy of real cell (row, col)
func (p *PaddedGrid) Interior(row, col int) bool {
	return p.At(row+1, col+1)
}

// CountLiveNeighbors counts the live neighbors of real cell (row, col)
func (p *PaddedGrid) CountLiveNeighbors(row, col int) int {
	var (
		w     = p.width
		i     = (row+1)*w + col + 1
		count = 0
	)
	for _, off := range [...]int{-w - 1, -w, -w + 1, -1, 1, w - 1, w, w + 1} {
		if p.cells[i+off] {
			count++
		}
	}
	return count
}
