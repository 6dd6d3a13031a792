package Queues

// Queue is a FIFO container.
type Queue[T any] interface {
	Push(item T)
	//Pop the item at the head. Returns *EmptyQueueError if there's nothing to pop.
	Pop() (T, error)
	//Peek at the head without removing it. The zero value of T if empty.
	Peek() T
	Empty() bool
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
