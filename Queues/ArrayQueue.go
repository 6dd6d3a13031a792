package Queues

// ArrayQueue is a Queue backed by a circular slice that grows by 1.5x when full.
// The zero value is an empty queue ready to use.
type ArrayQueue[T any] struct {
	sz, head, tail uint
	content        []T
}

var _ Queue[int] = (*ArrayQueue[int])(nil)

func MakeArrayQueue[T any](initCap uint) *ArrayQueue[T] {
	return &ArrayQueue[T]{content: make([]T, initCap)}
}

func (u *ArrayQueue[T]) Empty() bool {
	return u.sz == 0
}

// resize the backing slice to newLen and unwrap the content so that head is at 0. newLen>=sz.
func (u *ArrayQueue[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if u.sz > 0 {
		if u.head < u.tail {
			copy(nc, u.content[u.head:u.tail])
		} else {
			n := copy(nc, u.content[u.head:])
			copy(nc[n:], u.content[:u.tail])
		}
	}
	u.head, u.tail = 0, u.sz
	if u.tail == newLen {
		u.tail = 0
	}
	u.content = nc
}

// Shrink the backing slice to fit the current content.
func (u *ArrayQueue[T]) Shrink() {
	u.resize(u.sz | 1)
}

// Clear the queue, keeping the backing slice.
func (u *ArrayQueue[T]) Clear() {
	clear(u.content)
	u.tail, u.head, u.sz = 0, 0, 0
}

func (u *ArrayQueue[T]) Size() uint {
	return u.sz
}

func (u *ArrayQueue[T]) Push(item T) {
	if l := uint(len(u.content)); u.sz == l {
		u.resize(max(l*3/2, l+2))
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

func (u *ArrayQueue[T]) Pop() (T, error) {
	if u.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	t := u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return t, nil
}

func (u *ArrayQueue[T]) Peek() T {
	if u.Empty() {
		return *new(T)
	}
	return u.content[u.head]
}
