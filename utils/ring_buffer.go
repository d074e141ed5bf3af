package utils

import "fmt"

// RingBuffer keeps the most recent Cap() values, indexed oldest first
type RingBuffer[T any] struct {
	data  []T
	head  int // index of the oldest entry
	count int
}

func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	if capacity < 1 {
		panic(fmt.Errorf("ring buffer capacity must be positive, have %d", capacity))
	}
	return &RingBuffer[T]{data: make([]T, capacity)}
}

func (rb *RingBuffer[T]) Len() int { return rb.count }
func (rb *RingBuffer[T]) Cap() int { return len(rb.data) }
func (rb *RingBuffer[T]) Full() bool { return rb.count == len(rb.data) }

// Push appends val as the newest entry, evicting and returning the oldest one
// when the buffer is full
func (rb *RingBuffer[T]) Push(val T) (evicted T, wasEvicted bool) {
	var (
		capacity = len(rb.data)
	)
	if rb.count < capacity {
		rb.data[(rb.head+rb.count)%capacity] = val
		rb.count++
		return
	}
	evicted, wasEvicted = rb.data[rb.head], true
	rb.data[rb.head] = val
	rb.head = (rb.head + 1) % capacity
	return
}

// At returns the i-th entry counting from the oldest
func (rb *RingBuffer[T]) At(i int) T {
	if i < 0 || i >= rb.count {
		panic(fmt.Errorf("ring buffer index %d out of range [0,%d)", i, rb.count))
	}
	return rb.data[(rb.head+i)%len(rb.data)]
}
