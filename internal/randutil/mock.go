package randutil

// QueueSource is a Source for tests that returns queued values in order.
// Once the queue is exhausted it returns 0.
type QueueSource struct {
	values []int
	index  int
}

var _ Source = (*QueueSource)(nil)

// NewQueueSource creates a QueueSource preloaded with the given values.
func NewQueueSource(values ...int) *QueueSource {
	return &QueueSource{values: values}
}

// Intn returns the next queued value, clamped into [0, n).
func (q *QueueSource) Intn(n int) int {
	if q.index >= len(q.values) {
		return 0
	}
	v := q.values[q.index]
	q.index++
	if n > 0 {
		v %= n
	}
	return v
}

// Queue appends values to the result queue.
func (q *QueueSource) Queue(values ...int) {
	q.values = append(q.values, values...)
}
