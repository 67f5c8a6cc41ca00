package model

import "sync"

// sets recycles the cell maps dropped by Tick, Undo and history eviction.
var sets = newCellSetPool()

// cellSetPool for memory efficiency
type cellSetPool struct {
	pool sync.Pool
}

func newCellSetPool() *cellSetPool {
	return &cellSetPool{
		pool: sync.Pool{
			New: func() interface{} {
				return make(cellSet)
			},
		},
	}
}

// Get retrieves an empty cell set from the pool
func (p *cellSetPool) Get() cellSet {
	return p.pool.Get().(cellSet)
}

// Put returns a cell set to the pool, clearing its state. The caller must not
// keep any reference to s.
func (p *cellSetPool) Put(s cellSet) {
	clear(s)
	p.pool.Put(s)
}
