package dataset

import "sync"

// Pool provides sync.Pool-based Dataset reuse to reduce allocation churn
// when analyzing many inputs in sequence.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Dataset{}
			},
		},
	}
}

// Get returns an empty Dataset ready to Append into.
// Callers must return it via Put when done.
func (p *Pool) Get() *Dataset {
	d := p.pool.Get().(*Dataset)
	d.Reset()
	return d
}

// Put returns a Dataset to the pool for reuse.
// The caller must not use the dataset after calling Put.
func (p *Pool) Put(d *Dataset) {
	if d == nil {
		return
	}
	p.pool.Put(d)
}
