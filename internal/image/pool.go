package image

import "sync"

// Pool recycles scratch buffers between operations.
//
// Buffers are bucketed by dimensions and format. Get hands out zeroed
// buffers; Put drops buffers once a bucket holds maxPerBucket entries.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu           sync.Mutex
	buckets      map[poolKey][]*ImageBuf
	maxPerBucket int
}

type poolKey struct {
	width, height int
	format        Format
}

// NewPool creates a pool retaining at most maxPerBucket buffers per shape.
// Zero means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets:      make(map[poolKey][]*ImageBuf),
		maxPerBucket: maxPerBucket,
	}
}

// Get returns a zeroed width x height buffer of the given format.
func (p *Pool) Get(width, height int, format Format) *ImageBuf {
	key := poolKey{width: max(width, 0), height: max(height, 0), format: format}

	p.mu.Lock()
	bucket := p.buckets[key]
	if n := len(bucket); n > 0 {
		buf := bucket[n-1]
		p.buckets[key] = bucket[:n-1]
		p.mu.Unlock()
		buf.Clear()
		return buf
	}
	p.mu.Unlock()

	return New(key.width, key.height, format)
}

// Put returns buf to the pool. The caller must not use buf afterwards.
func (p *Pool) Put(buf *ImageBuf) {
	if buf == nil || buf.IsEmpty() {
		return
	}
	key := poolKey{width: buf.width, height: buf.height, format: buf.format}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxPerBucket > 0 && len(bucket) >= p.maxPerBucket {
		return
	}
	p.buckets[key] = append(bucket, buf)
}

// Len reports the number of buffers currently retained.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}

// Reset drops every retained buffer.
func (p *Pool) Reset() {
	p.mu.Lock()
	p.buckets = make(map[poolKey][]*ImageBuf)
	p.mu.Unlock()
}

var scratch = NewPool(4)

// GetScratch takes a buffer from the shared scratch pool.
func GetScratch(width, height int, format Format) *ImageBuf {
	return scratch.Get(width, height, format)
}

// PutScratch returns a buffer obtained from GetScratch.
func PutScratch(buf *ImageBuf) {
	scratch.Put(buf)
}

// ResetScratch empties the shared scratch pool and returns how many
// buffers it held.
func ResetScratch() int {
	n := scratch.Len()
	scratch.Reset()
	return n
}
