package cache

// lruNode is an entry in the recency list.
type lruNode[K comparable, V any] struct {
	key        K
	value      V
	prev, next *lruNode[K, V]
}

// lruList orders entries from most (head) to least (tail) recently used.
// It is not safe for concurrent use.
type lruList[K comparable, V any] struct {
	head, tail *lruNode[K, V]
	len        int
}

// pushFront inserts a new entry as the most recently used.
func (l *lruList[K, V]) pushFront(key K, value V) *lruNode[K, V] {
	n := &lruNode[K, V]{key: key, value: value}
	l.linkFront(n)
	return n
}

// moveToFront marks n as the most recently used.
func (l *lruList[K, V]) moveToFront(n *lruNode[K, V]) {
	if n == l.head {
		return
	}
	l.unlink(n)
	l.linkFront(n)
}

// removeOldest unlinks and returns the least recently used entry, or nil.
func (l *lruList[K, V]) removeOldest() *lruNode[K, V] {
	n := l.tail
	if n != nil {
		l.unlink(n)
	}
	return n
}

func (l *lruList[K, V]) linkFront(n *lruNode[K, V]) {
	n.prev, n.next = nil, l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.len++
}

func (l *lruList[K, V]) unlink(n *lruNode[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
	l.len--
}
