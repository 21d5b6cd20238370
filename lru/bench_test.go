package lru

import (
	"strconv"
	"testing"
)

func BenchmarkCache_GetHit(b *testing.B) {
	c := MustNew[int, int](1024)
	for i := 0; i < 1024; i++ {
		c.Put(i, i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(i & 1023)
	}
}

func BenchmarkCache_GetMiss(b *testing.B) {
	c := MustNew[int, int](1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(i)
	}
}

func BenchmarkCache_PutEvict(b *testing.B) {
	c := MustNew[int, int](1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Put(i, i)
	}
}

func BenchmarkCache_Mixed(b *testing.B) {
	keys := make([]string, 4096)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}
	c := MustNew[string, int](1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := keys[i&4095]
		if _, ok := c.Get(k); !ok {
			c.Put(k, i)
		}
	}
}
