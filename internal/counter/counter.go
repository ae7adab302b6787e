package counter

import (
	"sync"
	"sync/atomic"
)

type Counter struct {
	total atomic.Int64
}

// NewCounter creates and initializes a new Counter
func NewCounter() *Counter {
	return &Counter{}
}

// Add adds a value to the counter safely
func (c *Counter) Add(value int) {
	c.total.Add(int64(value))
}

// Count returns the current count safely
func (c *Counter) Count() int {
	return int(c.total.Load())
}

// Tally keeps one Counter per label, in the order labels were first seen.
type Tally struct {
	mu       sync.Mutex
	labels   []string
	counters map[string]*Counter
}

// NewTally creates a tally with the given labels registered up front, so they are reported
// even when they stay at zero.
func NewTally(labels ...string) *Tally {
	t := &Tally{counters: map[string]*Counter{}}
	for _, label := range labels {
		t.counter(label)
	}
	return t
}

func (t *Tally) counter(label string) *Counter {
	t.mu.Lock()
	defer t.mu.Unlock()
	c, ok := t.counters[label]
	if !ok {
		c = NewCounter()
		t.counters[label] = c
		t.labels = append(t.labels, label)
	}
	return c
}

func (t *Tally) Add(label string, value int) {
	t.counter(label).Add(value)
}

func (t *Tally) Count(label string) int {
	t.mu.Lock()
	c, ok := t.counters[label]
	t.mu.Unlock()
	if !ok {
		return 0
	}
	return c.Count()
}

func (t *Tally) Labels() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.labels...)
}

func (t *Tally) Total() int {
	total := 0
	for _, label := range t.Labels() {
		total += t.Count(label)
	}
	return total
}
