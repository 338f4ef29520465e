package pipeline

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtools-engine/internal/domain"
	"jobtools-engine/internal/filter"
	"jobtools-engine/internal/score"
)

func waitResult(t *testing.T, ch <-chan Result) Result {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a result")
		return Result{}
	}
}

// End-to-end: blacklist drops R3, scores follow the reference convention,
// ordering is descending.
func TestSubmitDeliversOrderedResult(t *testing.T) {
	records := []domain.JobRecord{
		domain.New(domain.Fields{ID: "r1", Title: "Engineer", Location: "California",
			Degrees: []domain.Degree{domain.DegreePhD}}),
		domain.New(domain.Fields{ID: "r2", Title: "Manager", Location: "Texas",
			Degrees: []domain.Degree{}}),
		domain.New(domain.Fields{ID: "r3", Title: "Engineer", Location: "Unknown",
			Description: "contains blacklisted-term here",
			Degrees:     []domain.Degree{domain.DegreeBA}}),
	}
	blacklist, err := domain.ParseTerms([]string{"blacklisted-term"})
	require.NoError(t, err)

	fcfg := filter.Config{Blacklist: blacklist}
	scfg := score.Config{
		LocationPriority: []string{"CA", "TX"},
		DegreeWeights:    map[domain.Degree]float64{domain.DegreePhD: 10, domain.DegreeBA: 2},
	}

	c := New(2, 2)
	results := make(chan Result, 1)
	c.OnResult(func(r Result) { results <- r })

	seq := c.Submit(records, fcfg, scfg)
	res := waitResult(t, results)

	assert.Equal(t, seq, res.Seq)
	require.Len(t, res.Records, 2)
	assert.Equal(t, "r1", res.Records[0].Record.ID)
	assert.Equal(t, 11.0, res.Records[0].Score)
	assert.Equal(t, "r2", res.Records[1].Record.ID)
	assert.Equal(t, 0.0, res.Records[1].Score)

	latest, ok := c.Latest()
	require.True(t, ok)
	assert.Equal(t, res.Seq, latest.Seq)
}

// A dataset that filters down to nothing is a valid empty result.
func TestEmptyDatasetDelivers(t *testing.T) {
	c := New(0, 0)
	results := make(chan Result, 1)
	c.OnResult(func(r Result) { results <- r })

	seq := c.Submit(nil, filter.Config{}, score.Config{})
	res := waitResult(t, results)
	assert.Equal(t, seq, res.Seq)
	assert.Empty(t, res.Records)
}

// Submitting while a computation is in flight supersedes it: the stale
// result is discarded silently and only the newest is delivered.
func TestSupersession(t *testing.T) {
	records := make([]domain.JobRecord, 16)
	for i := range records {
		records[i] = domain.New(domain.Fields{ID: string(rune('a' + i)), Title: "Engineer"})
	}

	c := New(1, 1)
	results := make(chan Result, 4)
	c.OnResult(func(r Result) { results <- r })

	firstEntered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	c.chunkHook = func(seq uint64) {
		if seq == 1 {
			once.Do(func() { close(firstEntered) })
			<-release
		}
	}

	_ = c.Submit(records, filter.Config{}, score.Config{})
	<-firstEntered
	seq2 := c.Submit(records, filter.Config{}, score.Config{})
	close(release)

	res := waitResult(t, results)
	assert.Equal(t, seq2, res.Seq, "only the newest request is delivered")

	c.wg.Wait()
	select {
	case extra := <-results:
		t.Fatalf("superseded request delivered a result: seq=%d", extra.Seq)
	default:
	}

	latest, ok := c.Latest()
	require.True(t, ok)
	assert.Equal(t, seq2, latest.Seq)
}

// Results arrive at most once per sequence, in increasing order.
func TestSequentialDeliveryOrder(t *testing.T) {
	rec := domain.New(domain.Fields{ID: "r1", Title: "Engineer"})

	c := New(0, 0)
	results := make(chan Result, 8)
	c.OnResult(func(r Result) { results <- r })

	var seqs []uint64
	for i := 0; i < 3; i++ {
		want := c.Submit([]domain.JobRecord{rec}, filter.Config{}, score.Config{})
		got := waitResult(t, results)
		assert.Equal(t, want, got.Seq)
		seqs = append(seqs, got.Seq)
	}
	for i := 1; i < len(seqs); i++ {
		assert.Greater(t, seqs[i], seqs[i-1])
	}
}

// Repeated recomputes over identical inputs produce identical output.
func TestRecomputeDeterminism(t *testing.T) {
	records := make([]domain.JobRecord, 100)
	for i := range records {
		records[i] = domain.New(domain.Fields{
			ID:          string(rune('a'+i%26)) + string(rune('a'+i/26)),
			Title:       "Engineer",
			Description: "go systems",
			Location:    "California",
		})
	}
	terms, err := domain.ParseTerms([]string{"go"})
	require.NoError(t, err)
	scfg := score.Config{
		LocationPriority: []string{"CA"},
		Tiers:            []score.Tier{{Name: "go", Weight: 2, Terms: terms}},
	}

	c := New(7, 4)
	results := make(chan Result, 1)
	c.OnResult(func(r Result) { results <- r })

	c.Submit(records, filter.Config{}, scfg)
	first := waitResult(t, results)

	for i := 0; i < 5; i++ {
		c.Submit(records, filter.Config{}, scfg)
		again := waitResult(t, results)
		require.Equal(t, len(first.Records), len(again.Records))
		for j := range first.Records {
			require.Equal(t, first.Records[j].Record.ID, again.Records[j].Record.ID)
			require.Equal(t, first.Records[j].Score, again.Records[j].Score)
			require.Equal(t, first.Records[j].Breakdown, again.Records[j].Breakdown)
		}
	}
}
