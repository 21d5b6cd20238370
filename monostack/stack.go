// Package monostack provides a stack that reports its minimum or maximum in
// constant time. Beside the values it keeps an auxiliary stack holding the
// running extreme, so Push, Pop, Top and Extreme are all O(1).
package monostack

import "cmp"

// Stack is a LIFO stack with O(1) access to its extreme element under the
// configured ordering. The zero value is not usable; create one with New,
// NewMin or NewMax.
type Stack[T any] struct {
	less     func(a, b T) bool
	values   []T
	extremes []T
}

// New returns a stack whose Extreme is the least element under less.
func New[T any](less func(a, b T) bool) *Stack[T] {
	return &Stack[T]{less: less}
}

// NewMin returns a stack tracking its minimum.
func NewMin[T cmp.Ordered]() *Stack[T] {
	return New(cmp.Less[T])
}

// NewMax returns a stack tracking its maximum.
func NewMax[T cmp.Ordered]() *Stack[T] {
	return New(func(a, b T) bool { return cmp.Less(b, a) })
}

// Push adds v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.values = append(s.values, v)
	// Ties are pushed too, otherwise popping one duplicate would lose the other.
	if n := len(s.extremes); n == 0 || !s.less(s.extremes[n-1], v) {
		s.extremes = append(s.extremes, v)
	}
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.values)
	if n == 0 {
		return zero, false
	}
	v := s.values[n-1]
	s.values[n-1] = zero
	s.values = s.values[:n-1]

	m := len(s.extremes)
	if !s.less(v, s.extremes[m-1]) && !s.less(s.extremes[m-1], v) {
		s.extremes[m-1] = zero
		s.extremes = s.extremes[:m-1]
	}
	return v, true
}

// Top returns the top element without removing it.
func (s *Stack[T]) Top() (T, bool) {
	if len(s.values) == 0 {
		var zero T
		return zero, false
	}
	return s.values[len(s.values)-1], true
}

// Extreme returns the minimum (or maximum, for NewMax) of the stack.
func (s *Stack[T]) Extreme() (T, bool) {
	if len(s.extremes) == 0 {
		var zero T
		return zero, false
	}
	return s.extremes[len(s.extremes)-1], true
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return len(s.values)
}
