package mocks

import (
	"sync"

	"github.com/mcoot/hoopsclient/internal/dependencies/random"
)

// MockRandom returns queued values from Intn
type MockRandom struct {
	mu      sync.Mutex
	results []int
	index   int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a MockRandom returning values in order
func NewMockRandom(values ...int) *MockRandom {
	return &MockRandom{results: values}
}

// Intn returns the next queued value modulo n, or 0 when the queue is empty
func (r *MockRandom) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n <= 0 || r.index >= len(r.results) {
		return 0
	}
	v := r.results[r.index] % n
	r.index++
	return v
}

// Queue appends values to the result queue
func (r *MockRandom) Queue(values ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, values...)
}
