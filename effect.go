package main

import "context"

// effectRun is one activation of a timer-driven effect. Stopping it cancels
// the effect's timers and waits for its goroutine, so the effect cannot touch
// its owner's state once stop returns.
type effectRun struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func startEffect(fn func(ctx context.Context)) *effectRun {
	ctx, cancel := context.WithCancel(context.Background())
	run := &effectRun{cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(run.done)
		fn(ctx)
	}()
	return run
}

func (r *effectRun) stop() {
	if r == nil {
		return
	}
	r.cancel()
	<-r.done
}
