package closer

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPool(t *testing.T) {
	wp := NewWorkerPool(2)
	defer wp.Close()

	var mu sync.Mutex
	var executed int
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		err := wp.AddTask(context.Background(), func() error {
			defer wg.Done()
			mu.Lock()
			executed++
			mu.Unlock()
			return nil
		})
		assert.NoError(t, err)
	}
	wg.Wait()

	mu.Lock()
	assert.Equal(t, 5, executed)
	mu.Unlock()
}

func TestWorkerPoolTaskError(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Close()

	var wg sync.WaitGroup
	wg.Add(1)
	err := wp.AddTask(context.Background(), func() error {
		defer wg.Done()
		return errors.New("task failed")
	})
	assert.NoError(t, err)
	wg.Wait()
}

func TestWorkerPoolCanceledContext(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Close()

	// fill the queue so AddTask has to wait, then cancel
	block := make(chan struct{})
	defer close(block)
	_ = wp.AddTask(context.Background(), func() error {
		<-block
		return nil
	})
	_ = wp.AddTask(context.Background(), func() error { return nil })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := wp.AddTask(ctx, func() error {
		t.Error("Task should not be executed")
		return nil
	})
	assert.Error(t, err)
	assert.Equal(t, context.Canceled, err)
}
