package model

import "sync"

// PaddedPool recycles padded snapshots between generations
type PaddedPool struct {
	pool sync.Pool
}

func NewPaddedPool() *PaddedPool {
	return &PaddedPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &PaddedGrid{}
			},
		},
	}
}

// Get retrieves a padded grid from the pool, sized and cleared for rows x cols
func (p *PaddedPool) Get(rows, cols int) *PaddedGrid {
	g := p.pool.Get().(*PaddedGrid)
	g.reset(rows, cols)
	return g
}

// Put returns a padded grid to the pool
func (p *PaddedPool) Put(g *PaddedGrid) {
	if g == nil {
		return
	}
	p.pool.Put(g)
}
