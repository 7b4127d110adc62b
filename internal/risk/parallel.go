package risk

import (
	"runtime"
	"sync"

	"github.com/pgxtools/pgx-risk/internal/vcf"
)

// workItem is one requested drug tagged with its position in the request.
type workItem struct {
	Seq  int
	Drug string
}

// workResult is the outcome for one drug.
type workResult struct {
	Seq     int
	Outcome Outcome
}

// parallelAnalyze analyzes work items using a pool of workers. Results are
// sent to the returned channel in arrival order (not sequence order); use
// collectOrdered to consume results in sequence-number order. If workers is
// 0, runtime.NumCPU() is used.
func (e *Engine) parallelAnalyze(items <-chan workItem, groups map[string][]*vcf.Record, workers int) <-chan workResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan workResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()
			for item := range items {
				results <- workResult{
					Seq:     item.Seq,
					Outcome: e.AnalyzeDrug(item.Drug, groups),
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// collectOrdered calls fn for each result in sequence-number order. It
// buffers out-of-order results in a pending map and emits them as soon as
// the next expected sequence number is available. Blocks until the results
// channel is closed.
func collectOrdered(results <-chan workResult, fn func(workResult)) {
	pending := make(map[int]workResult)
	nextSeq := 0

	for r := range results {
		pending[r.Seq] = r

		for {
			rr, ok := pending[nextSeq]
			if !ok {
				break
			}
			delete(pending, nextSeq)
			nextSeq++
			fn(rr)
		}
	}
}
