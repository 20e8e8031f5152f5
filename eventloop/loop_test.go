package eventloop

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func startLoop(t *testing.T) *Loop {
	loop := New(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		loop.Run(ctx)
	}()

	t.Cleanup(func() {
		cancel()
		wg.Wait()
	})
	return loop
}

func settle(t *testing.T, loop *Loop) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, loop.Settle(ctx))
}

func Test_Post__should_run_tasks_in_order(t *testing.T) {
	loop := startLoop(t)

	var order []int
	for i := 0; i < 100; i++ {
		i := i
		loop.Post(func() { order = append(order, i) })
	}
	settle(t, loop)

	require.Len(t, order, 100)
	for i, v := range order {
		assert.Equal(t, i, v)
	}
	assert.Equal(t, int64(100), loop.ran.Load())
}

func Test_Post__should_keep_tasks_posted_before_run(t *testing.T) {
	loop := New(zap.NewNop())
	ran := false
	loop.Post(func() { ran = true })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)

	settle(t, loop)
	assert.True(t, ran)
}

func Test_Post__should_allow_posting_from_a_task(t *testing.T) {
	loop := startLoop(t)

	var order []string
	loop.Post(func() {
		order = append(order, "outer")
		loop.Post(func() { order = append(order, "inner") })
	})
	settle(t, loop)

	assert.Equal(t, []string{"outer", "inner"}, order)
}

func Test_Go__should_post_continuation_and_settle_after_it(t *testing.T) {
	loop := startLoop(t)
	release := make(chan struct{})

	var result string
	loop.Post(func() {
		loop.Go(func(ctx context.Context) func() {
			<-release
			return func() { result = "done" }
		})
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.Equal(t, context.DeadlineExceeded, loop.Settle(ctx))

	close(release)
	settle(t, loop)
	assert.Equal(t, "done", result)
}

func Test_Go__should_wait_for_chained_calls(t *testing.T) {
	loop := startLoop(t)

	var steps []string
	loop.Post(func() {
		loop.Go(func(ctx context.Context) func() {
			return func() {
				steps = append(steps, "first")
				loop.Go(func(ctx context.Context) func() {
					time.Sleep(10 * time.Millisecond)
					return func() { steps = append(steps, "second") }
				})
			}
		})
	})
	settle(t, loop)

	assert.Equal(t, []string{"first", "second"}, steps)
}

func Test_Go__should_allow_nil_continuation(t *testing.T) {
	loop := startLoop(t)

	loop.Go(func(ctx context.Context) func() { return nil })

	settle(t, loop)
}

func Test_Go__should_cancel_work_on_close(t *testing.T) {
	loop := New(zap.NewNop())
	errs := make(chan error, 1)

	loop.Go(func(ctx context.Context) func() {
		<-ctx.Done()
		errs <- ctx.Err()
		return nil
	})
	loop.Close()

	select {
	case err := <-errs:
		assert.Equal(t, context.Canceled, err)
	case <-time.After(time.Second):
		t.Fatal("work was not cancelled")
	}
}

func Test_Do__should_wait_for_task(t *testing.T) {
	loop := startLoop(t)

	value := 0
	err := loop.Do(context.Background(), func() { value = 42 })

	assert.NoError(t, err)
	assert.Equal(t, 42, value)
}

func Test_Do__should_return_error_when_context_done(t *testing.T) {
	loop := New(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := loop.Do(ctx, func() {})

	assert.Equal(t, context.Canceled, err)
}

func Test_Run__should_survive_panicking_task(t *testing.T) {
	loop := startLoop(t)

	loop.Post(func() { panic("boom") })
	ran := false
	loop.Post(func() { ran = true })
	settle(t, loop)

	assert.True(t, ran)
	assert.Equal(t, int64(2), loop.ran.Load())
}

func Test_Run__should_return_error_when_already_running(t *testing.T) {
	loop := startLoop(t)
	require.NoError(t, loop.Do(context.Background(), func() {}))

	err := loop.Run(context.Background())

	assert.Equal(t, ErrAlreadyRunning, err)
}

func Test_Run__should_return_when_context_done(t *testing.T) {
	loop := New(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- loop.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}
}

func Test_Settle__should_return_immediately_when_idle(t *testing.T) {
	loop := New(zap.NewNop())

	settle(t, loop)
}
