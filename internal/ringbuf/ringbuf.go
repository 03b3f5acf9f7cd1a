// Package ringbuf is a fixed capacity double ended queue.
package ringbuf

type RingBuf[T any] struct {
	buf  []T
	head int
	n    int
}

func New[T any](capacity int) RingBuf[T] {
	return RingBuf[T]{buf: make([]T, capacity)}
}

func (rb *RingBuf[T]) Cap() int {
	return len(rb.buf)
}

func (rb *RingBuf[T]) Len() int {
	return rb.n
}

// PushBack appends val, evicting the front element when full.
func (rb *RingBuf[T]) PushBack(val T) {
	if rb.n == len(rb.buf) {
		rb.PopFront()
	}
	rb.buf[(rb.head+rb.n)%len(rb.buf)] = val
	rb.n++
}

func (rb *RingBuf[T]) PopFront() T {
	val := rb.buf[rb.head]
	rb.head = (rb.head + 1) % len(rb.buf)
	rb.n--
	return val
}

func (rb *RingBuf[T]) PopBack() T {
	rb.n--
	return rb.buf[(rb.head+rb.n)%len(rb.buf)]
}

func (rb *RingBuf[T]) At(i int) T {
	if i < 0 || i >= rb.n {
		panic(i)
	}
	return rb.buf[(rb.head+i)%len(rb.buf)]
}
