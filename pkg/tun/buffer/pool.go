package buffer

import (
	"sync"
)

const (
	defaultMTU  = 1500
	maxIPHeader = 60
)

// A Pool is a specialized sync.Pool for Data.
type Pool struct {
	pool sync.Pool
	MTU  int
}

// NewPool returns a Pool that creates Data large enough for packets of the given mtu.
func NewPool(mtu int) *Pool {
	return &Pool{
		pool: sync.Pool{New: func() any { return NewData(mtu + maxIPHeader) }},
		MTU:  mtu,
	}
}

// Get returns a Data from the pool, resized to hold size bytes.
func (p *Pool) Get(size int) *Data {
	d := p.pool.Get().(*Data)
	d.Resize(size)
	return d
}

func (p *Pool) Put(d *Data) {
	p.pool.Put(d)
}

var DataPool = NewPool(defaultMTU)
