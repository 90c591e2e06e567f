package reactive

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeReceivesCurrentValue(t *testing.T) {
	w := NewWritable(3)

	var got []int
	unsubscribe := w.Subscribe(func(v int) { got = append(got, v) })
	defer unsubscribe()

	assert.Equal(t, []int{3}, got)
}

func TestSetNotifiesInSubscriptionOrder(t *testing.T) {
	w := NewWritable("a")

	var calls []string
	w.Subscribe(func(v string) { calls = append(calls, "first:"+v) })
	w.Subscribe(func(v string) { calls = append(calls, "second:"+v) })

	w.Set("b")

	assert.Equal(t, []string{"first:a", "second:a", "first:b", "second:b"}, calls)
	assert.Equal(t, "b", w.Get())
}

func TestUpdateAppliesFunction(t *testing.T) {
	w := NewWritable(1)

	var last int
	w.Subscribe(func(v int) { last = v })

	w.Update(func(v int) int { return v + 10 })

	assert.Equal(t, 11, w.Get())
	assert.Equal(t, 11, last)
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	w := NewWritable(0)

	count := 0
	unsubscribe := w.Subscribe(func(int) { count++ })
	require.Equal(t, 1, count)

	unsubscribe()
	unsubscribe()
	w.Set(5)

	assert.Equal(t, 1, count)
	assert.Empty(t, w.subs)
	assert.Empty(t, w.order)
}

func TestUnsubscribeMiddleKeepsOthers(t *testing.T) {
	w := NewWritable(0)

	var a, b, c int
	w.Subscribe(func(v int) { a = v })
	unsubscribeB := w.Subscribe(func(v int) { b = v })
	w.Subscribe(func(v int) { c = v })

	unsubscribeB()
	w.Set(7)

	assert.Equal(t, 7, a)
	assert.Equal(t, 0, b)
	assert.Equal(t, 7, c)
	assert.Len(t, w.subs, 2)
	assert.Len(t, w.order, 2)
}

func TestSubscriberMayReadValue(t *testing.T) {
	w := NewWritable(0)

	var seen int
	w.Subscribe(func(int) { seen = w.Get() })
	w.Set(9)

	assert.Equal(t, 9, seen)
}

func TestConcurrentSets(t *testing.T) {
	w := NewWritable(0)

	var mu sync.Mutex
	notifications := 0
	w.Subscribe(func(int) {
		mu.Lock()
		notifications++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			w.Set(v)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 51, notifications)
}
