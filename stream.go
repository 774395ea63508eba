package artgo

import (
	"context"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// BatchResult represents the result of a batch operation. Results and Errors
// are index-aligned with the presented patterns; Errors[i] is nil when item
// i succeeded.
type BatchResult struct {
	Results []ActivationResult
	Errors  []error
}

// Failed reports the number of items that failed.
func (r BatchResult) Failed() int {
	n := 0
	for _, err := range r.Errors {
		if err != nil {
			n++
		}
	}
	return n
}

// LearnBatch presents patterns for clustering in order. Items are learned
// sequentially so that results are reproducible; a per-item failure does not
// stop the batch. When a resource controller is attached, the batch is
// paced by its training rate limit.
func (n *Network) LearnBatch(ctx context.Context, patterns [][]float64) BatchResult {
	start := time.Now()
	result := BatchResult{
		Results: make([]ActivationResult, len(patterns)),
		Errors:  make([]error, len(patterns)),
	}

	for i, p := range patterns {
		if err := n.rc.WaitTrain(ctx, 1); err != nil {
			result.Errors[i] = err
			continue
		}
		res, err := n.engine.Learn(ctx, p)
		result.Results[i] = res
		result.Errors[i] = translateError(err)
	}

	failed := result.Failed()
	n.metrics.RecordBatch(len(patterns), failed, time.Since(start))
	n.logger.LogBatch(ctx, "learn", len(patterns), failed)
	return result
}

// PredictBatch classifies patterns concurrently. Predicts are read-only, so
// items fan out across GOMAXPROCS goroutines; the output order matches the
// input order. When a resource controller is attached, concurrent
// evaluations are gated by its evaluation slots.
func (n *Network) PredictBatch(ctx context.Context, patterns [][]float64) BatchResult {
	start := time.Now()
	result := BatchResult{
		Results: make([]ActivationResult, len(patterns)),
		Errors:  make([]error, len(patterns)),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, p := range patterns {
		i, p := i, p
		g.Go(func() error {
			if err := n.rc.AcquireEvaluation(ctx); err != nil {
				result.Errors[i] = err
				return nil
			}
			defer n.rc.ReleaseEvaluation()

			res, err := n.engine.Predict(ctx, p)
			result.Results[i] = res
			result.Errors[i] = translateError(err)
			return nil
		})
	}
	_ = g.Wait()

	failed := result.Failed()
	n.metrics.RecordBatch(len(patterns), failed, time.Since(start))
	n.logger.LogBatch(ctx, "predict", len(patterns), failed)
	return result
}

// TrainBatch presents input/target pairs in order. Inputs and targets must
// have the same length; a per-item failure does not stop the batch.
func (c *Classifier) TrainBatch(ctx context.Context, inputs, targets [][]float64) BatchResult {
	start := time.Now()
	count := min(len(inputs), len(targets))
	result := BatchResult{
		Results: make([]ActivationResult, count),
		Errors:  make([]error, count),
	}

	for i := 0; i < count; i++ {
		res, err := c.artmap.Train(ctx, inputs[i], targets[i])
		result.Results[i] = res
		result.Errors[i] = translateError(err)
	}

	failed := result.Failed()
	c.metrics.RecordBatch(count, failed, time.Since(start))
	c.logger.LogBatch(ctx, "train", count, failed)
	return result
}

// Trainer consumes patterns from a channel and learns them in the
// background. Use it to decouple producers from the serialized learn path.
type Trainer struct {
	network *Network
	cancel  context.CancelFunc
	done    chan struct{}

	mu      sync.Mutex
	learned int64
	failed  int64
	lastErr error
}

// NewTrainer starts a background trainer reading from patterns. The trainer
// stops when the channel is closed, the context is cancelled, or Stop is
// called. When a resource controller is attached to the network, learning is
// paced by its training rate limit.
func (n *Network) NewTrainer(ctx context.Context, patterns <-chan []float64) *Trainer {
	ctx, cancel := context.WithCancel(ctx)
	t := &Trainer{
		network: n,
		cancel:  cancel,
		done:    make(chan struct{}),
	}

	go t.run(ctx, patterns)
	return t
}

func (t *Trainer) run(ctx context.Context, patterns <-chan []float64) {
	defer close(t.done)

	for {
		select {
		case <-ctx.Done():
			return
		case p, ok := <-patterns:
			if !ok {
				return
			}
			if err := t.network.rc.WaitTrain(ctx, 1); err != nil {
				t.record(err)
				return
			}
			_, err := t.network.Learn(ctx, p)
			t.record(err)
		}
	}
}

func (t *Trainer) record(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err != nil {
		t.failed++
		t.lastErr = err
		return
	}
	t.learned++
}

// Stop cancels the trainer and waits for the background goroutine to exit.
func (t *Trainer) Stop() {
	t.cancel()
	<-t.done
}

// Wait blocks until the trainer exits on its own (channel closed or context
// cancelled).
func (t *Trainer) Wait() {
	<-t.done
}

// Progress reports the number of learned and failed patterns and the most
// recent error.
func (t *Trainer) Progress() (learned, failed int64, lastErr error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.learned, t.failed, t.lastErr
}
