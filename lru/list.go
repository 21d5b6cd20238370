package lru

// Reserved arena slots. They never hold user data.
const (
	headSlot  int32 = 0
	tailSlot  int32 = 1
	firstSlot int32 = 2
)

// node is one arena slot of the recency list
type node[K comparable, V any] struct {
	key        K
	value      V
	prev, next int32
	gen        uint32 // bumped every time the slot is freed
	linked     bool
}

// handle refers to a node without owning it. A handle whose generation no
// longer matches its slot is stale.
type handle struct {
	slot int32
	gen  uint32
}

// recencyList is a doubly linked list laid out in an arena that grows up to
// maxSlots data slots and is then recycled through the free list.
// head.next is the most recently used entry, tail.prev the least.
type recencyList[K comparable, V any] struct {
	nodes    []node[K, V]
	free     []int32
	maxSlots int
	len      int
}

func newRecencyList[K comparable, V any](maxSlots int) recencyList[K, V] {
	l := recencyList[K, V]{
		nodes:    make([]node[K, V], firstSlot),
		maxSlots: maxSlots,
	}
	l.reset()
	return l
}

// reset unlinks every entry and returns all allocated data slots to the
// free list.
func (l *recencyList[K, V]) reset() {
	var zeroK K
	var zeroV V
	for i := int(firstSlot); i < len(l.nodes); i++ {
		n := &l.nodes[i]
		if n.linked {
			n.gen++
		}
		n.key, n.value = zeroK, zeroV
		n.linked = false
	}
	l.nodes[headSlot].next = tailSlot
	l.nodes[headSlot].prev = -1
	l.nodes[tailSlot].prev = headSlot
	l.nodes[tailSlot].next = -1

	// Hand out low slots first.
	l.free = l.free[:0]
	for i := int32(len(l.nodes)) - 1; i >= firstSlot; i-- {
		l.free = append(l.free, i)
	}
	l.len = 0
}

// alloc takes a slot off the free list, or appends one while the arena is
// below maxSlots, and fills it. The slot is not linked.
func (l *recencyList[K, V]) alloc(key K, value V) handle {
	var slot int32
	if n := len(l.free); n > 0 {
		slot = l.free[n-1]
		l.free = l.free[:n-1]
	} else {
		if len(l.nodes)-int(firstSlot) >= l.maxSlots {
			panic(invariantError("arena exhausted"))
		}
		slot = int32(len(l.nodes))
		l.nodes = append(l.nodes, node[K, V]{})
	}
	n := &l.nodes[slot]
	n.key, n.value = key, value
	return handle{slot: slot, gen: n.gen}
}

// release clears an unlinked slot and puts it back on the free list.
func (l *recencyList[K, V]) release(slot int32) {
	var zeroK K
	var zeroV V
	n := &l.nodes[slot]
	n.key, n.value = zeroK, zeroV
	n.gen++
	l.free = append(l.free, slot)
}

// insertAtHead links slot right after the head sentinel.
func (l *recencyList[K, V]) insertAtHead(slot int32) {
	head := &l.nodes[headSlot]
	n := &l.nodes[slot]
	n.prev = headSlot
	n.next = head.next
	l.nodes[head.next].prev = slot
	head.next = slot
	n.linked = true
	l.len++
}

// unlink detaches slot and joins its neighbours.
func (l *recencyList[K, V]) unlink(slot int32) {
	n := &l.nodes[slot]
	l.nodes[n.prev].next = n.next
	l.nodes[n.next].prev = n.prev
	n.linked = false
	l.len--
}

// moveToHead marks slot as just used.
func (l *recencyList[K, V]) moveToHead(slot int32) {
	if l.nodes[headSlot].next == slot {
		return
	}
	l.unlink(slot)
	l.insertAtHead(slot)
}

// removeTail unlinks and returns the least recently used slot.
func (l *recencyList[K, V]) removeTail() int32 {
	slot := l.nodes[tailSlot].prev
	if slot == headSlot {
		panic(invariantError("removeTail on empty list"))
	}
	l.unlink(slot)
	return slot
}

// front returns the most recently used slot, or tailSlot when empty.
func (l *recencyList[K, V]) front() int32 {
	return l.nodes[headSlot].next
}

// back returns the least recently used slot, or headSlot when empty.
func (l *recencyList[K, V]) back() int32 {
	return l.nodes[tailSlot].prev
}
