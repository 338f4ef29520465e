package pipeline

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"jobtools-engine/internal/domain"
	"jobtools-engine/internal/filter"
	"jobtools-engine/internal/rank"
	"jobtools-engine/internal/score"
)

const defaultChunkSize = 256

// Request is one recompute unit: an immutable dataset snapshot plus compiled
// configuration snapshots and a monotonically increasing sequence number.
type Request struct {
	Seq     uint64
	Records []domain.JobRecord
	Filter  filter.Config
	Sort    score.Config
}

// Result is the ordered, filtered view for one non-superseded request.
type Result struct {
	Seq     uint64               `json:"seq"`
	Records []score.ScoredRecord `json:"records"`
}

// Coordinator runs filter→score→rank as a cancellable background unit of
// work. Submitting a new request supersedes any in-flight computation:
// supersession is observed cooperatively at chunk boundaries, the stale
// result is discarded silently, and only the newest result is delivered.
// Results are delivered in increasing sequence order, at most once each.
type Coordinator struct {
	chunkSize int
	workers   int

	mu        sync.Mutex
	seq       uint64
	cancel    context.CancelFunc
	delivered uint64
	onResult  []func(Result)

	// deliverMu serializes delivery so callbacks observe increasing seqs.
	deliverMu sync.Mutex

	latest atomic.Value // Result
	wg     sync.WaitGroup

	// chunkHook, when set, runs at every chunk boundary. Test seam.
	chunkHook func(seq uint64)
}

// New returns a Coordinator. chunkSize and workers <= 0 select defaults.
func New(chunkSize, workers int) *Coordinator {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Coordinator{chunkSize: chunkSize, workers: workers}
}

// OnResult registers a delivery callback. Register before the first Submit;
// callbacks run on the computing goroutine and must not block for long.
func (c *Coordinator) OnResult(fn func(Result)) {
	c.mu.Lock()
	c.onResult = append(c.onResult, fn)
	c.mu.Unlock()
}

// Submit begins computing a new request and returns its sequence number
// without blocking. Any in-flight computation is marked superseded.
func (c *Coordinator) Submit(records []domain.JobRecord, fcfg filter.Config, scfg score.Config) uint64 {
	c.mu.Lock()
	c.seq++
	n := c.seq
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.mu.Unlock()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.run(ctx, Request{Seq: n, Records: records, Filter: fcfg, Sort: scfg})
	}()
	return n
}

// Latest returns the most recently delivered result, if any.
func (c *Coordinator) Latest() (Result, bool) {
	v := c.latest.Load()
	if v == nil {
		return Result{}, false
	}
	return v.(Result), true
}

// Close cancels any in-flight computation and waits for it to stop.
func (c *Coordinator) Close() {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.mu.Unlock()
	c.wg.Wait()
}

func (c *Coordinator) run(ctx context.Context, req Request) {
	kept, err := c.filterStage(ctx, req)
	if err != nil {
		return // superseded mid-filter
	}
	scored, err := c.scoreStage(ctx, kept, req.Sort)
	if err != nil {
		return // superseded mid-score
	}
	c.deliver(Result{Seq: req.Seq, Records: rank.Order(scored)})
}

func (c *Coordinator) filterStage(ctx context.Context, req Request) ([]domain.JobRecord, error) {
	kept := make([]domain.JobRecord, 0, len(req.Records))
	for start := 0; start < len(req.Records); start += c.chunkSize {
		if c.chunkHook != nil {
			c.chunkHook(req.Seq)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := min(start+c.chunkSize, len(req.Records))
		for _, r := range req.Records[start:end] {
			if filter.Keep(r, req.Filter) {
				kept = append(kept, r)
			}
		}
	}
	return kept, nil
}

// scoreStage scores chunks in parallel. Every record is a pure function of
// (record, config) and each chunk writes a disjoint range of the output
// slice, so the result is identical to sequential scoring.
func (c *Coordinator) scoreStage(ctx context.Context, records []domain.JobRecord, cfg score.Config) ([]score.ScoredRecord, error) {
	out := make([]score.ScoredRecord, len(records))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for start := 0; start < len(records); start += c.chunkSize {
		start := start
		end := min(start+c.chunkSize, len(records))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				out[i] = score.One(records[i], cfg)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Coordinator) deliver(res Result) {
	c.deliverMu.Lock()
	defer c.deliverMu.Unlock()

	c.mu.Lock()
	stale := res.Seq != c.seq || res.Seq <= c.delivered
	if !stale {
		c.delivered = res.Seq
	}
	fns := make([]func(Result), len(c.onResult))
	copy(fns, c.onResult)
	c.mu.Unlock()

	if stale {
		// Superseded: silent discard, not an error.
		return
	}
	c.latest.Store(res)
	for _, fn := range fns {
		fn(res)
	}
}
