package lru

// index maps a key to the handle of its node in the recency list.
type index[K comparable] struct {
	m map[K]handle
}

func newIndex[K comparable]() index[K] {
	return index[K]{m: make(map[K]handle)}
}

func (ix index[K]) lookup(key K) (handle, bool) {
	h, ok := ix.m[key]
	return h, ok
}

func (ix index[K]) insert(key K, h handle) {
	if _, ok := ix.m[key]; ok {
		panic(invariantError("index insert of present key"))
	}
	ix.m[key] = h
}

func (ix index[K]) remove(key K) {
	if _, ok := ix.m[key]; !ok {
		panic(invariantError("index remove of absent key"))
	}
	delete(ix.m, key)
}

func (ix index[K]) len() int {
	return len(ix.m)
}
