package lru

import (
	"math/rand/v2"
	"testing"

	list "github.com/bahlo/generic-list-go"
)

type modelEntry struct {
	key, value int
}

// model is a plain LRU on top of a generic container list, used as the
// oracle for the arena cache.
type model struct {
	capacity int
	ll       *list.List[modelEntry]
	items    map[int]*list.Element[modelEntry]
}

func newModel(capacity int) *model {
	return &model{
		capacity: capacity,
		ll:       list.New[modelEntry](),
		items:    make(map[int]*list.Element[modelEntry]),
	}
}

func (m *model) get(key int) (int, bool) {
	el, ok := m.items[key]
	if !ok {
		return 0, false
	}
	m.ll.MoveToFront(el)
	return el.Value.value, true
}

func (m *model) put(key, value int) (victim int, evicted bool) {
	if el, ok := m.items[key]; ok {
		el.Value.value = value
		m.ll.MoveToFront(el)
		return 0, false
	}
	m.items[key] = m.ll.PushFront(modelEntry{key: key, value: value})
	if m.ll.Len() > m.capacity {
		back := m.ll.Back()
		m.ll.Remove(back)
		delete(m.items, back.Value.key)
		return back.Value.key, true
	}
	return 0, false
}

func (m *model) remove(key int) bool {
	el, ok := m.items[key]
	if !ok {
		return false
	}
	m.ll.Remove(el)
	delete(m.items, key)
	return true
}

func (m *model) keys() []int {
	out := make([]int, 0, m.ll.Len())
	for el := m.ll.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.key)
	}
	return out
}

func TestCache_MatchesModel(t *testing.T) {
	for _, capacity := range []int{1, 2, 3, 8, 32} {
		rng := rand.New(rand.NewPCG(uint64(capacity), 42))
		keySpace := capacity*2 + 1

		var victim int
		var sawEvict bool
		c := MustNew(capacity, WithOnEvict(func(k, _ int) {
			victim, sawEvict = k, true
		}))
		m := newModel(capacity)

		for step := 0; step < 5000; step++ {
			key := rng.IntN(keySpace)
			switch op := rng.IntN(10); {
			case op < 4:
				got, gotOK := c.Get(key)
				want, wantOK := m.get(key)
				if got != want || gotOK != wantOK {
					t.Fatalf("cap=%d step=%d get(%d): got (%d,%v), want (%d,%v)",
						capacity, step, key, got, gotOK, want, wantOK)
				}
			case op < 9:
				value := rng.Int()
				sawEvict = false
				evicted := c.Put(key, value)
				wantVictim, wantEvicted := m.put(key, value)
				if evicted != wantEvicted || sawEvict != wantEvicted {
					t.Fatalf("cap=%d step=%d put(%d): evicted=%v callback=%v, want %v",
						capacity, step, key, evicted, sawEvict, wantEvicted)
				}
				if wantEvicted && victim != wantVictim {
					t.Fatalf("cap=%d step=%d put(%d): evicted %d, want %d",
						capacity, step, key, victim, wantVictim)
				}
			default:
				if got, want := c.Remove(key), m.remove(key); got != want {
					t.Fatalf("cap=%d step=%d remove(%d): got %v, want %v", capacity, step, key, got, want)
				}
			}

			if c.Len() > capacity {
				t.Fatalf("cap=%d step=%d: len %d exceeds capacity", capacity, step, c.Len())
			}
			if err := c.checkInvariants(); err != nil {
				t.Fatalf("cap=%d step=%d: %v", capacity, step, err)
			}
		}

		if got, want := c.Keys(), m.keys(); !equalInts(got, want) {
			t.Fatalf("cap=%d: keys %v, want %v", capacity, got, want)
		}
	}
}

func TestCache_RoundTrip(t *testing.T) {
	c := MustNew[int, int](64)
	latest := make(map[int]int)
	rng := rand.New(rand.NewPCG(7, 7))

	for i := 0; i < 2000; i++ {
		k, v := rng.IntN(48), rng.Int()
		c.Put(k, v)
		latest[k] = v
	}

	// 48 distinct keys never exceed capacity 64, so nothing was evicted.
	for k, want := range latest {
		if got, ok := c.Get(k); !ok || got != want {
			t.Fatalf("get(%d): got (%d,%v), want %d", k, got, ok, want)
		}
	}
}
